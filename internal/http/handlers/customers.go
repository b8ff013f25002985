package handlers

import (
	"log"
	"net/http"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/customers
func GetCustomers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, COALESCE(name, ''), COALESCE(address, ''), COALESCE(phone, ''),
		       COALESCE(gst_no, ''), COALESCE(state, '')
		FROM customers
		ORDER BY name ASC
	`)
	if err != nil {
		log.Println("GetCustomers query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers: " + err.Error()})
		return
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var cust models.Customer
		if err := rows.Scan(&cust.ID, &cust.Name, &cust.Address, &cust.Phone, &cust.GSTNo, &cust.State); err != nil {
			log.Println("GetCustomers scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read customers: " + err.Error()})
			return
		}
		customers = append(customers, cust)
	}

	if err := rows.Err(); err != nil {
		log.Println("GetCustomers rows error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read customers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// POST /api/customers
func CreateCustomer(c *gin.Context) {
	var input models.Customer
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Name == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO customers (name, address, phone, gst_no, state)
		VALUES (?, ?, ?, ?, ?)
	`, input.Name, input.Address, input.Phone, input.GSTNo, input.State)
	if err != nil {
		log.Println("CreateCustomer insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer: " + err.Error()})
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/customers/:id
func UpdateCustomer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.Customer
	if !BindJSONOrError(c, &input) {
		return
	}

	if _, err := intconfig.DB.Exec(`
		UPDATE customers
		SET name = ?, address = ?, phone = ?, gst_no = ?, state = ?
		WHERE id = ?
	`, input.Name, input.Address, input.Phone, input.GSTNo, input.State, id); err != nil {
		log.Println("UpdateCustomer update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer: " + err.Error()})
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/customers/:id
func DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		log.Println("DeleteCustomer delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer: " + err.Error()})
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
