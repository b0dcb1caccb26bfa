package entity

// BalanceResponse represents both balances of a user formatted for display
type BalanceResponse struct {
	UserID uint64 `json:"userId"`
	GC     string `json:"gc"`
	SC     string `json:"sc"`
}

// UserToBalanceResponse converts a User entity to a BalanceResponse
// This is a separate function rather than a method on User to keep domain models clean
func UserToBalanceResponse(user *User) BalanceResponse {
	gc, sc := user.Balances().Formatted()
	return BalanceResponse{
		UserID: user.ID,
		GC:     gc,
		SC:     sc,
	}
}
