package handlers

import (
	"log"
	"net/http"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const userColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(username, ''),
	COALESCE(email, ''),
	COALESCE(phone, ''),
	COALESCE(role, ''),
	COALESCE(status, '')`

func scanUser(scan func(dest ...any) error) (models.User, error) {
	var u models.User
	err := scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status)
	return u, err
}

// GET /api/users
func GetUsers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`SELECT ` + userColumns + ` FROM users ORDER BY id DESC`)
	if err != nil {
		log.Println("GetUsers query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users: " + err.Error()})
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			log.Println("GetUsers scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read users: " + err.Error()})
			return
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		log.Println("GetUsers rows error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read users: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	u, err := scanUser(intconfig.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id).Scan)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

type createUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var req createUserRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Role == "" {
		req.Role = "user"
	}
	if req.Status == "" {
		req.Status = "active"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password hashing failed"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, req.Name, req.Username, req.Email, req.Phone, string(hash), req.Role, req.Status)
	if err != nil {
		log.Println("CreateUser insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, models.User{
		ID:       id,
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Status:   req.Status,
	})
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.User
	if !BindJSONOrError(c, &input) {
		return
	}

	if _, err := intconfig.DB.Exec(`
		UPDATE users
		SET name = ?, username = ?, email = ?, phone = ?, role = ?, status = ?, updated_at = NOW()
		WHERE id = ?
	`, input.Name, input.Username, input.Email, input.Phone, input.Role, input.Status, id); err != nil {
		log.Println("UpdateUser update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user: " + err.Error()})
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		log.Println("DeleteUser delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user: " + err.Error()})
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
