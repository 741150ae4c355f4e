package model

const (
	TableName  = "Users"
	EntityName = "user"

	FieldUserID   = "userID"
	FieldName     = "name"
	FieldPassword = "password"
	FieldUserType = "userType"
)

type User struct {
	UserID   int    `db:"userID"   insert:"-"`
	Name     string `db:"name"`
	Password string `db:"password"`
	UserType string `db:"userType"`
}
