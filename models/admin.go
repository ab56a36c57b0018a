package models

// AdminStats is the aggregate returned by GET /admin/stats/.
type AdminStats struct {
	TotalUsers        int     `json:"total_users"`
	TotalReservations int     `json:"total_reservations"`
	TotalMembers      int     `json:"total_members"`
	TotalRevenue      float64 `json:"total_revenue"`
}
