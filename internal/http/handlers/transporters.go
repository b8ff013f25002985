package handlers

import (
	"log"
	"net/http"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const transporterColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(address, ''),
	COALESCE(phone, ''),
	COALESCE(pan, ''),
	COALESCE(gst_no, ''),
	COALESCE(bank_name, ''),
	COALESCE(account_no, ''),
	COALESCE(ifsc, ''),
	COALESCE(tds_percentage, 0)`

func scanTransporter(scan func(dest ...any) error) (models.Transporter, error) {
	var t models.Transporter
	err := scan(
		&t.ID,
		&t.Name,
		&t.Address,
		&t.Phone,
		&t.PAN,
		&t.GSTNo,
		&t.BankName,
		&t.AccountNo,
		&t.IFSC,
		&t.TDSPercentage,
	)
	return t, err
}

// GET /api/transporters
func GetTransporters(c *gin.Context) {
	rows, err := intconfig.DB.Query(`SELECT ` + transporterColumns + ` FROM transporters ORDER BY name ASC`)
	if err != nil {
		log.Println("GetTransporters query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transporters: " + err.Error()})
		return
	}
	defer rows.Close()

	transporters := []models.Transporter{}
	for rows.Next() {
		t, err := scanTransporter(rows.Scan)
		if err != nil {
			log.Println("GetTransporters scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read transporters: " + err.Error()})
			return
		}
		transporters = append(transporters, t)
	}

	if err := rows.Err(); err != nil {
		log.Println("GetTransporters rows error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read transporters: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, transporters)
}

// GET /api/transporters/:id
func GetTransporterByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	t, err := scanTransporter(intconfig.DB.QueryRow(`SELECT `+transporterColumns+` FROM transporters WHERE id = ?`, id).Scan)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "transporter not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// POST /api/transporters
func CreateTransporter(c *gin.Context) {
	var input models.Transporter
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Name == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO transporters (name, address, phone, pan, gst_no, bank_name, account_no, ifsc, tds_percentage)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.Name, input.Address, input.Phone, input.PAN, input.GSTNo,
		input.BankName, input.AccountNo, input.IFSC, input.TDSPercentage)
	if err != nil {
		log.Println("CreateTransporter insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create transporter: " + err.Error()})
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/transporters/:id
func UpdateTransporter(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.Transporter
	if !BindJSONOrError(c, &input) {
		return
	}

	if _, err := intconfig.DB.Exec(`
		UPDATE transporters
		SET name = ?, address = ?, phone = ?, pan = ?, gst_no = ?,
		    bank_name = ?, account_no = ?, ifsc = ?, tds_percentage = ?
		WHERE id = ?
	`, input.Name, input.Address, input.Phone, input.PAN, input.GSTNo,
		input.BankName, input.AccountNo, input.IFSC, input.TDSPercentage, id); err != nil {
		log.Println("UpdateTransporter update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update transporter: " + err.Error()})
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/transporters/:id
func DeleteTransporter(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM transporters WHERE id = ?`, id)
	if err != nil {
		log.Println("DeleteTransporter delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete transporter: " + err.Error()})
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "transporter not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transporter deleted"})
}
