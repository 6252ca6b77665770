package dto

type AppointmentListDTO struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	ClientName  string  `json:"client_name,omitempty"`
	MasterName  string  `json:"master_name"`
	ServiceName string  `json:"service_name"`
	TotalPrice  float64 `json:"total_price"`
}
