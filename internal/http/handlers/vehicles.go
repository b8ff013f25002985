package handlers

import (
	"log"
	"net/http"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/vehicles
func GetVehicles(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, COALESCE(vehicle_no, ''), COALESCE(vehicle_type, ''), capacity,
		       COALESCE(transporter_id, 0), COALESCE(is_own, 0), COALESCE(model_type, '')
		FROM vehicles
		ORDER BY vehicle_no ASC
	`)
	if err != nil {
		log.Println("GetVehicles query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vehicles: " + err.Error()})
		return
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.VehicleNo, &v.VehicleType, &v.Capacity,
			&v.TransporterID, &v.IsOwn, &v.ModelType); err != nil {
			log.Println("GetVehicles scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read vehicles: " + err.Error()})
			return
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		log.Println("GetVehicles rows error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var input models.Vehicle
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.VehicleNo == "" {
		RespondError(c, http.StatusBadRequest, "vehicleNo is required", nil)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO vehicles (vehicle_no, vehicle_type, capacity, transporter_id, is_own, model_type)
		VALUES (?, ?, ?, ?, ?, ?)
	`, input.VehicleNo, input.VehicleType, input.Capacity, input.TransporterID, input.IsOwn, input.ModelType)
	if err != nil {
		log.Println("CreateVehicle insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create vehicle: " + err.Error()})
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.Vehicle
	if !BindJSONOrError(c, &input) {
		return
	}

	if _, err := intconfig.DB.Exec(`
		UPDATE vehicles
		SET vehicle_no = ?, vehicle_type = ?, capacity = ?, transporter_id = ?, is_own = ?, model_type = ?
		WHERE id = ?
	`, input.VehicleNo, input.VehicleType, input.Capacity, input.TransporterID, input.IsOwn, input.ModelType, id); err != nil {
		log.Println("UpdateVehicle update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update vehicle: " + err.Error()})
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		log.Println("DeleteVehicle delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete vehicle: " + err.Error()})
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
