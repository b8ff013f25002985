package models

// Driver identity and payout details. Bank fields feed the payment voucher PDF
// only; aggregation never reads them.
type Driver struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	LicenseNo string `json:"licenseNo,omitempty"`
	BankName  string `json:"bankName,omitempty"`
	AccountNo string `json:"accountNo,omitempty"`
	IFSC      string `json:"ifsc,omitempty"`
	VehicleNo string `json:"vehicleNo,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Transporter is an external vehicle-owning party paid per subtrip net of
// commission and expenses. TDSPercentage is withheld at presentation time.
type Transporter struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	PAN           string  `json:"pan,omitempty"`
	GSTNo         string  `json:"gstNo,omitempty"`
	BankName      string  `json:"bankName,omitempty"`
	AccountNo     string  `json:"accountNo,omitempty"`
	IFSC          string  `json:"ifsc,omitempty"`
	TDSPercentage float64 `json:"tdsPercentage,omitempty"`
}

type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	GSTNo   string `json:"gstNo,omitempty"`
	State   string `json:"state,omitempty"`
}
