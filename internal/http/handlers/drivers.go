package handlers

import (
	"log"
	"net/http"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const driverColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(phone, ''),
	COALESCE(license_no, ''),
	COALESCE(bank_name, ''),
	COALESCE(account_no, ''),
	COALESCE(ifsc, ''),
	COALESCE(vehicle_no, ''),
	COALESCE(status, '')`

func scanDriver(scan func(dest ...any) error) (models.Driver, error) {
	var d models.Driver
	err := scan(
		&d.ID,
		&d.Name,
		&d.Phone,
		&d.LicenseNo,
		&d.BankName,
		&d.AccountNo,
		&d.IFSC,
		&d.VehicleNo,
		&d.Status,
	)
	return d, err
}

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`SELECT ` + driverColumns + ` FROM drivers ORDER BY id DESC`)
	if err != nil {
		log.Println("GetDrivers query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch drivers: " + err.Error()})
		return
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows.Scan)
		if err != nil {
			log.Println("GetDrivers scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read drivers: " + err.Error()})
			return
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		log.Println("GetDrivers rows error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read drivers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// GET /api/drivers/:id
func GetDriverByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	d, err := scanDriver(intconfig.DB.QueryRow(`SELECT `+driverColumns+` FROM drivers WHERE id = ?`, id).Scan)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var input models.Driver
	if !BindJSONOrError(c, &input) {
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO drivers (name, phone, license_no, bank_name, account_no, ifsc, vehicle_no, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		input.Name,
		input.Phone,
		input.LicenseNo,
		input.BankName,
		input.AccountNo,
		input.IFSC,
		input.VehicleNo,
		input.Status,
	)
	if err != nil {
		log.Println("CreateDriver insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create driver: " + err.Error()})
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.Driver
	if !BindJSONOrError(c, &input) {
		return
	}

	if _, err := intconfig.DB.Exec(`
		UPDATE drivers
		SET name = ?, phone = ?, license_no = ?, bank_name = ?, account_no = ?,
		    ifsc = ?, vehicle_no = ?, status = ?
		WHERE id = ?
	`,
		input.Name,
		input.Phone,
		input.LicenseNo,
		input.BankName,
		input.AccountNo,
		input.IFSC,
		input.VehicleNo,
		input.Status,
		id,
	); err != nil {
		log.Println("UpdateDriver update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update driver: " + err.Error()})
		return
	}

	out, err := scanDriver(intconfig.DB.QueryRow(`SELECT `+driverColumns+` FROM drivers WHERE id = ?`, id).Scan)
	if err != nil {
		log.Println("UpdateDriver readback error:", err)
		input.ID = id
		c.JSON(http.StatusOK, input)
		return
	}

	c.JSON(http.StatusOK, out)
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM drivers WHERE id = ?`, id)
	if err != nil {
		log.Println("DeleteDriver delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete driver: " + err.Error()})
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
}
