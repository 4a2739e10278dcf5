package controller

import (
	"errors"
	"fmt"
	"net/http"

	"user-analytics-service/logger"
	"user-analytics-service/src/models"
	"user-analytics-service/src/service"
	"user-analytics-service/src/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsController translates query parameters into analytics service
// calls and service errors into status codes and plain-text bodies.
type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(service *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		Service: service,
	}
}

// @Summary Register a user
// @Description Registers a new user under a caller-assigned id
// @Tags analytics
// @Produce plain
// @Param userId query string true "User ID"
// @Param userName query string true "Display name"
// @Success 200 {string} string "User registered: true"
// @Failure 400 {string} string "Missing parameters"
// @Failure 409 {string} string "User already exists"
// @Router /register [post]
func (c *AnalyticsController) Register(ctx *gin.Context) {
	userID := ctx.Query("userId")
	userName := ctx.Query("userName")

	err := c.Service.RegisterUser(userID, userName)
	if err != nil {
		if errors.Is(err, models.ErrMissingParameter) {
			utils.SendError(ctx, http.StatusBadRequest, "Missing parameters")
			return
		}
		if errors.Is(err, models.ErrUserAlreadyExists) {
			utils.SendError(ctx, http.StatusConflict, "User already exists")
			return
		}
		utils.SendError(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Logger.Infof("User %s registered", userID)
	ctx.String(http.StatusOK, "User registered: true")
}

// @Summary Record a session
// @Description Records one login/logout interval for a registered user
// @Tags analytics
// @Produce plain
// @Param userId query string true "User ID"
// @Param loginTime query string true "Login time (2006-01-02T15:04:05)"
// @Param logoutTime query string true "Logout time (2006-01-02T15:04:05)"
// @Success 200 {string} string "Session recorded"
// @Failure 400 {string} string "Missing parameters"
// @Router /recordSession [post]
func (c *AnalyticsController) RecordSession(ctx *gin.Context) {
	userID := ctx.Query("userId")
	loginTime := ctx.Query("loginTime")
	logoutTime := ctx.Query("logoutTime")

	err := c.Service.RecordSession(userID, loginTime, logoutTime)
	if err != nil {
		var parseErr *models.ParseError
		switch {
		case errors.Is(err, models.ErrMissingParameter):
			utils.SendError(ctx, http.StatusBadRequest, "Missing parameters")
		case errors.As(err, &parseErr):
			utils.SendError(ctx, http.StatusBadRequest, "Invalid data: "+parseErr.Error())
		case errors.Is(err, models.ErrLoginAfterLogout):
			// Message preserved verbatim for client compatibility.
			utils.SendError(ctx, http.StatusBadRequest, "Login Time must be not not later than Logout Time")
		case errors.Is(err, models.ErrUserNotFound):
			utils.SendError(ctx, http.StatusBadRequest, "Invalid data: User not found")
		default:
			utils.SendError(ctx, http.StatusInternalServerError, err.Error())
		}
		return
	}

	logger.Logger.Infof("Session recorded for user %s", userID)
	ctx.String(http.StatusOK, "Session recorded")
}

// @Summary Total activity
// @Description Returns the sum of the user's session durations in minutes
// @Tags analytics
// @Produce plain
// @Param userId query string true "User ID"
// @Success 200 {string} string "Total activity: 120 minutes"
// @Failure 400 {string} string "Missing userId"
// @Failure 404 {string} string "No sessions found for user"
// @Router /totalActivity [get]
func (c *AnalyticsController) TotalActivity(ctx *gin.Context) {
	userID := ctx.Query("userId")

	total, err := c.Service.TotalActivityTime(userID)
	if err != nil {
		if errors.Is(err, models.ErrMissingParameter) {
			utils.SendError(ctx, http.StatusBadRequest, "Missing userId")
			return
		}
		if errors.Is(err, models.ErrNoSessions) {
			utils.SendError(ctx, http.StatusNotFound, "No sessions found for user")
			return
		}
		utils.SendError(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.String(http.StatusOK, fmt.Sprintf("Total activity: %d minutes", total))
}

// @Summary Inactive users
// @Description Lists ids of users whose last logout predates now minus the given days
// @Tags analytics
// @Produce json
// @Param days query int true "Inactivity window in days"
// @Success 200 {array} string
// @Failure 400 {string} string "Missing days parameter"
// @Router /inactiveUsers [get]
func (c *AnalyticsController) InactiveUsers(ctx *gin.Context) {
	days := ctx.Query("days")

	inactive, err := c.Service.InactiveUsers(days)
	if err != nil {
		var parseErr *models.ParseError
		switch {
		case errors.Is(err, models.ErrMissingParameter):
			utils.SendError(ctx, http.StatusBadRequest, "Missing days parameter")
		case errors.As(err, &parseErr):
			utils.SendError(ctx, http.StatusBadRequest, "Invalid number format for days")
		case errors.Is(err, models.ErrNegativeDays):
			utils.SendError(ctx, http.StatusBadRequest, "The number of days must be non-negative")
		default:
			utils.SendError(ctx, http.StatusInternalServerError, err.Error())
		}
		return
	}

	ctx.JSON(http.StatusOK, inactive)
}

// @Summary Monthly activity
// @Description Per-day activity minutes for sessions whose login falls in the given month
// @Tags analytics
// @Produce json
// @Param userId query string true "User ID"
// @Param month query string true "Month (2006-01)"
// @Success 200 {object} map[string]int64
// @Failure 400 {string} string "Missing parameters"
// @Router /monthlyActivity [get]
func (c *AnalyticsController) MonthlyActivity(ctx *gin.Context) {
	userID := ctx.Query("userId")
	month := ctx.Query("month")

	activity, err := c.Service.MonthlyActivity(userID, month)
	if err != nil {
		var parseErr *models.ParseError
		switch {
		case errors.Is(err, models.ErrMissingParameter):
			utils.SendError(ctx, http.StatusBadRequest, "Missing parameters")
		case errors.As(err, &parseErr):
			utils.SendError(ctx, http.StatusBadRequest, "Invalid data: "+parseErr.Error())
		default:
			utils.SendError(ctx, http.StatusInternalServerError, err.Error())
		}
		return
	}

	ctx.JSON(http.StatusOK, activity)
}
