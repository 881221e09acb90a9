package controllers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rdeano/dentacare/config"
	"github.com/rdeano/dentacare/security"
)

// Resource is the one CRUD controller, instantiated per entity. M is the row
// model returned by List, I the validated input accepted by Create and
// Update. Each entity file supplies the SQL and the scan function; the
// handlers, id generation, and error shape live here once.
type Resource[M any, I any] struct {
	Name        string
	ListQuery   string
	Scan        func(*sql.Rows) (M, error)
	InsertQuery string
	InsertArgs  func(id string, in I) []interface{}
	UpdateQuery string
	UpdateArgs  func(in I, id string) []interface{}
	DeleteQuery string
}

// Register mounts the handler set on a route group.
func (r Resource[M, I]) Register(rg *gin.RouterGroup) {
	rg.GET("", r.List)
	rg.POST("", r.Create)
	rg.PUT("/:id", r.Update)
	rg.DELETE("/:id", r.Delete)
}

func (r Resource[M, I]) List(c *gin.Context) {
	rows, err := config.DB.Query(r.ListQuery)
	if err != nil {
		security.SendDatabaseError(c, "Failed to fetch "+r.Name+" records")
		return
	}
	defer rows.Close()

	items := []M{}
	for rows.Next() {
		item, err := r.Scan(rows)
		if err != nil {
			security.SendDatabaseError(c, "Failed to read "+r.Name+" record")
			return
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		security.SendDatabaseError(c, "Failed to fetch "+r.Name+" records")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (r Resource[M, I]) Create(c *gin.Context) {
	var input I
	if err := c.ShouldBindJSON(&input); err != nil {
		security.SendValidationError(c, "Invalid input data", err.Error())
		return
	}

	id := uuid.NewString()
	if _, err := config.DB.Exec(r.InsertQuery, r.InsertArgs(id, input)...); err != nil {
		security.SendDatabaseError(c, "Failed to create "+r.Name)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (r Resource[M, I]) Update(c *gin.Context) {
	id := c.Param("id")

	var input I
	if err := c.ShouldBindJSON(&input); err != nil {
		security.SendValidationError(c, "Invalid input data", err.Error())
		return
	}

	result, err := config.DB.Exec(r.UpdateQuery, r.UpdateArgs(input, id)...)
	if err != nil {
		security.SendDatabaseError(c, "Failed to update "+r.Name)
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		security.SendDatabaseError(c, "Database error")
		return
	}
	if rowsAffected == 0 {
		security.SendNotFoundError(c, r.Name)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": r.Name + " updated successfully"})
}

func (r Resource[M, I]) Delete(c *gin.Context) {
	id := c.Param("id")

	result, err := config.DB.Exec(r.DeleteQuery, id)
	if err != nil {
		security.SendDatabaseError(c, "Failed to delete "+r.Name)
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		security.SendDatabaseError(c, "Database error")
		return
	}
	if rowsAffected == 0 {
		security.SendNotFoundError(c, r.Name)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": r.Name + " deleted successfully"})
}
