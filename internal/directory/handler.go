package directory

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"fitconnect/internal/api"
	"fitconnect/internal/table"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	dir         *Directory
	defaultSize int
}

func NewHandler(dir *Directory, defaultSize int) *Handler {
	return &Handler{dir: dir, defaultSize: defaultSize}
}

type ViewQuery struct {
	Search    string `form:"search"`
	Sort      string `form:"sort"`
	Direction string `form:"direction"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,oneof=10 20 50 100"`
}

// State converts the query into table state. A sort column without a
// direction sorts ascending.
func (q ViewQuery) State() (table.State, error) {
	direction, err := table.ParseDirection(q.Direction)
	if err != nil {
		return table.State{}, err
	}
	if q.Direction == "" {
		direction = table.SortAsc
	}

	s := table.NewState().WithSearch(q.Search)
	if q.Sort != "" {
		if s, err = s.WithSort(q.Sort, direction); err != nil {
			return table.State{}, err
		}
	}
	if q.PageSize != 0 {
		if s, err = s.WithPageSize(q.PageSize); err != nil {
			return table.State{}, err
		}
	}
	if q.Page != 0 {
		if s, err = s.WithPage(q.Page); err != nil {
			return table.State{}, err
		}
	}
	return s, nil
}

func validColumn(column string) bool {
	for _, c := range Columns {
		if c == column {
			return true
		}
	}
	return false
}

// List godoc
// @Summary      Member table
// @Description  Filters, sorts and pages the member list.
// @Tags         directory
// @Produce      json
// @Param        search     query     string  false  "Case-insensitive substring"
// @Param        sort       query     string  false  "Column"
// @Param        direction  query     string  false  "asc, desc or none"
// @Param        page       query     int     false  "Page, 1-indexed"
// @Param        page_size  query     int     false  "10, 20, 50 or 100"
// @Success      200  {object}  table.View[directory.Member]
// @Failure      400  {object}  api.ErrorResponse
// @Router       /directory/members [get]
func (h *Handler) List(c *gin.Context) {
	var q ViewQuery
	if !api.BindQuery(c, &q) {
		return
	}
	if q.Sort != "" && !validColumn(q.Sort) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown sort column"})
		return
	}

	state, err := q.State()
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.dir.View(c.Request.Context(), state)
	if err != nil {
		h.respondError(c, err, "Failed to fetch members")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Page godoc
// @Summary      Raw member page
// @Tags         directory
// @Produce      json
// @Param        page       query     int  false  "Page, 1-indexed"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  directory.Page
// @Router       /directory/members/page [get]
func (h *Handler) Page(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid page"})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(table.DefaultPageSize)))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid page size"})
		return
	}

	result, err := h.dir.FetchPage(c.Request.Context(), page, size)
	if err != nil {
		h.respondError(c, err, "Failed to fetch members")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Add godoc
// @Summary      Add member
// @Tags         directory
// @Accept       json
// @Produce      json
// @Param        request  body      directory.AddMemberRequest  true  "Member"
// @Success      201      {object}  directory.Member
// @Failure      400      {object}  api.ErrorResponse
// @Router       /directory/members [post]
func (h *Handler) Add(c *gin.Context) {
	var req AddMemberRequest
	if !api.BindJSON(c, &req) {
		return
	}

	m, err := h.dir.Add(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to add member")
		return
	}
	c.JSON(http.StatusCreated, m)
}

// Delete godoc
// @Summary      Delete member
// @Tags         directory
// @Param        id   path      int  true  "Member ID"
// @Success      204
// @Failure      404  {object}  api.ErrorResponse
// @Router       /directory/members/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid member ID"})
		return
	}

	if err := h.dir.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete member")
		return
	}
	c.Status(http.StatusNoContent)
}

// Reset godoc
// @Summary      Regenerate members
// @Tags         directory
// @Param        count  query     int  false  "Member count"
// @Success      200    {object}  api.MessageResponse
// @Router       /directory/reset [post]
func (h *Handler) Reset(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(h.defaultSize)))
	if err != nil || count < 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid count"})
		return
	}

	h.dir.Reset(count)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Directory reset"})
}

// Clear godoc
// @Summary      Remove all members
// @Tags         directory
// @Success      200  {object}  api.MessageResponse
// @Router       /directory/clear [post]
func (h *Handler) Clear(c *gin.Context) {
	h.dir.Clear()
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Directory cleared"})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
	case errors.Is(err, table.ErrInvalidPage), errors.Is(err, table.ErrInvalidPageSize):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "Request cancelled"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}
