package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterVendorRequest struct {
	Name        string `json:"name"`
	VendorType  string `json:"vendor_type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PriceRange  string `json:"price_range"`
	Contact     string `json:"contact"`
}

type VendorDTO struct {
	VendorID    string `json:"vendor_id"`
	OwnerUserID string `json:"owner_user_id"`
	Name        string `json:"name"`
	VendorType  string `json:"vendor_type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PriceRange  string `json:"price_range"`
	Contact     string `json:"contact"`
	CreatedAt   string `json:"created_at"`
}

type RegisterVendorResponse struct {
	Vendor VendorDTO `json:"vendor"`
}

type GetVendorResponse struct {
	Vendor VendorDTO `json:"vendor"`
}

type ListVendorsResponse struct {
	Items []VendorDTO `json:"items"`
}

type DashboardResponse struct {
	VendorID          string  `json:"vendor_id"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	LastBookingAt     string  `json:"last_booking_at,omitempty"`
}
