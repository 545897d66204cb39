package model

// ShoppingItem lives only in local storage; it is never sent to the server.
type ShoppingItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// StoredShoppingList is the persisted form of the daily list. Date is a
// yyyy-mm-dd day key; the whole list is discarded when it no longer matches
// the current day.
type StoredShoppingList struct {
	Items []ShoppingItem `json:"items"`
	Date  string         `json:"date"`
}
