package models

// Product is a single catalog entry. The id is a snowflake, so it is
// time-ordered and doubles as the creation timestamp.
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Discount int    `json:"discount"`
	Stock    int    `json:"stock"`
	Image    string `json:"img"`
}
