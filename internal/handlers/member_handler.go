package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/helpers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/mappers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/payloads"
	"github.com/stadtkapelle/eisenstadt-backend/internal/repository"
)

func CreateMember(c *gin.Context) {
	var req payloads.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	members := repository.NewMemberRepository(db.(*gorm.DB))

	member := mappers.MemberToEntity(&req)
	saved, err := members.Save(member)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Failed to create member.")
		return
	}

	c.JSON(http.StatusCreated, mappers.MemberToResponse(saved))
}

func GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid member id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	member, err := repository.NewMemberRepository(db.(*gorm.DB)).FindActiveByID(id)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Member not found.")
		return
	}

	c.JSON(http.StatusOK, mappers.MemberToResponse(member))
}

// ListMembers lists active members. ?include_deleted=true widens the query
// to soft-deleted rows for admin audits.
func ListMembers(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	members := repository.NewMemberRepository(db.(*gorm.DB))

	var (
		found []models.Member
		err   error
	)
	if c.Query("include_deleted") == "true" {
		found, err = members.FindAll()
	} else {
		found, err = members.FindAllActive()
	}
	if err != nil {
		helpers.RespondWithAppError(c, err, "Error retrieving members.")
		return
	}

	responses := make([]payloads.MemberResponse, 0, len(found))
	for i := range found {
		responses = append(responses, *mappers.MemberToResponse(&found[i]))
	}

	c.JSON(http.StatusOK, gin.H{"members": responses, "total": len(responses)})
}

func UpdateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid member id.")
		return
	}

	var req payloads.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	members := repository.NewMemberRepository(db.(*gorm.DB))

	member, err := members.FindActiveByID(id)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Member not found.")
		return
	}

	mappers.UpdateMemberEntity(member, &req)

	saved, err := members.Save(member)
	if err != nil {
		helpers.RespondWithAppError(c, err, "Failed to update member.")
		return
	}

	c.JSON(http.StatusOK, mappers.MemberToResponse(saved))
}

// DeleteMember soft deletes: the row is kept with a deletion timestamp and
// disappears from all active queries.
func DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid member id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	if err := repository.NewMemberRepository(db.(*gorm.DB)).SoftDelete(id); err != nil {
		helpers.RespondWithAppError(c, err, "Failed to delete member.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully."})
}
