package model

// Category is a user's named spending or income bucket within an account
type Category struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	UserID  uint64 `gorm:"not null;uniqueIndex:idx_category_user_name_account"`
	Name    string `gorm:"not null;size:100;uniqueIndex:idx_category_user_name_account"`
	Account string `gorm:"not null;size:100;uniqueIndex:idx_category_user_name_account"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
