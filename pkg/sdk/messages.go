package sdk

// Fixed response messages. Handlers and the client both reference these so
// the wire strings stay in one place.
const (
	MsgWelcome = "Welcome to the Expense Tracking API."

	MsgNamesContainsOnlyLetters = "Names must consist of letters only."
	MsgPasswordMustBeStrong     = "Password must be at least 8 characters long and include at least one letter, one number, and one special character."
	MsgEmailAlreadyRegistered   = "This email address is already registered."
	MsgInvalidRoleID            = "The provided role ID is not valid."
	MsgUserCreated              = "User has been created successfully."
	MsgUserCreationFailed       = "An error occurred during the creation of the user."

	MsgValidationError     = "A validation error occurred."
	MsgInvalidCredentials  = "The credentials provided are invalid."
	MsgLoginSuccessful     = "Login successful."
	MsgInternalServerError = "An internal server error occurred. Please try again later."
	MsgInvalidSortField    = "The specified sort field is invalid."
	MsgInvalidSortOrder    = "The specified sort order is invalid."
	MsgUsersRetrieved      = "Users retrieved successfully."

	MsgMissingAuthorizationToken = "Authorization token is missing or invalid."
	MsgInvalidAuthorizationToken = "The authorization token provided is invalid."
	MsgExpiredAuthorizationToken = "The authorization token has expired."
	MsgAccessForbidden           = "Access denied: You do not have the necessary permissions."

	MsgUserNotExist  = "User does not exist."
	MsgUserDataFound = "User details found."
	MsgUserUpdated   = "User has been updated successfully."

	MsgPasswordIncorrect = "The provided password is incorrect."
	MsgPasswordUpdated   = "Password has been updated successfully."

	MsgUserDeleted = "User has been deleted successfully."

	MsgRoleCreated           = "Role has been created successfully."
	MsgRoleNameAlreadyExists = "A role with this name already exists."
	MsgRoleNotExist          = "Role does not exist."
	MsgRolesRetrieved        = "Roles retrieved successfully."
	MsgRoleUpdated           = "Role has been updated successfully."
	MsgRoleDeleted           = "Role has been deleted successfully."
	MsgRoleInUse             = "Role cannot be deleted while users are assigned to it."

	MsgModuleCreated           = "Module has been created successfully."
	MsgModuleNameAlreadyExists = "A module with this name already exists."
	MsgModuleNotExist          = "Module does not exist."
	MsgModulesRetrieved        = "Modules retrieved successfully."
	MsgModuleUpdated           = "Module has been updated successfully."

	MsgPermissionCreated = "Permission entry created"
	MsgPermissionDeleted = "Permission entry deleted"

	MsgCategoryCreated           = "Category has been created successfully."
	MsgCategoryNameAlreadyExists = "A category with this name already exists."
	MsgCategoryNotExist          = "Category does not exist."
	MsgCategoriesRetrieved       = "Categories retrieved successfully."
	MsgCategoryUpdated           = "Category has been updated successfully."
	MsgCategoryDeleted           = "Category has been deleted successfully."
	MsgCategoryInUse             = "Category cannot be deleted while expenses reference it."

	MsgExpenseCreated    = "Expense has been created successfully."
	MsgExpenseNotExist   = "Expense does not exist."
	MsgExpensesRetrieved = "Expenses retrieved successfully."
	MsgExpenseUpdated    = "Expense has been updated successfully."
	MsgExpenseDeleted    = "Expense has been deleted successfully."
	MsgInvalidAmount     = "Expense amount must be greater than zero."

	MsgReportRetrieved = "Spend report retrieved successfully."
)
