package models

type Vehicle struct {
	ID            int64  `json:"id"`
	VehicleNo     string `json:"vehicleNo"`
	VehicleType   string `json:"vehicleType,omitempty"`
	Capacity      *int   `json:"capacity,omitempty"` // tonnes
	TransporterID int64  `json:"transporterId,omitempty"`
	IsOwn         bool   `json:"isOwn,omitempty"`
	ModelType     string `json:"modelType,omitempty"`
}
