package dto

// CategoryRequest names a category within an account. An empty account means the default one.
type CategoryRequest struct {
	Name    string `json:"name" form:"name"`
	Account string `json:"account" form:"account"`
}

// DeleteCategoryResponse reports how many transactions moved to the sentinel category
type DeleteCategoryResponse struct {
	Success    bool  `json:"success"`
	Reassigned int64 `json:"reassigned"`
}
