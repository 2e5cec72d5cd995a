package ordercontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/azozal-iraqi/Skystore/models"
	"github.com/azozal-iraqi/Skystore/notify"
	"github.com/azozal-iraqi/Skystore/store"
)

// SubmitOrderRequest is the public order submission payload.
type SubmitOrderRequest struct {
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
	Governorate  string  `json:"gov"`
	Area         string  `json:"area"`
	Items        string  `json:"items"`
	Total        float64 `json:"total"`
	ProductIDs   []int64 `json:"productIds"`
}

// Order timestamps are rendered in a fixed civil timezone regardless of the
// server's local zone. time/tzdata is linked in from main so the lookup
// works in scratch containers.
var baghdad = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Baghdad")
	if err != nil {
		return time.FixedZone("AST", 3*60*60)
	}
	return loc
}()

func orderTime(t time.Time) string {
	return t.In(baghdad).Format("1/2/2006, 3:04:05 PM")
}

// SubmitOrder validates the submission, decrements stock for the referenced
// products and appends the order in one transaction, then queues the
// Telegram notification. Notification delivery never affects the response.
func SubmitOrder(s *store.Store, q *notify.Queue) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
			return
		}
		if req.CustomerName == "" || req.Phone == "" || req.Governorate == "" ||
			req.Area == "" || req.Items == "" || req.Total == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
			return
		}

		order := models.Order{
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
			Governorate:  req.Governorate,
			Area:         req.Area,
			Items:        req.Items,
			Total:        req.Total,
			Time:         orderTime(time.Now()),
		}
		if err := s.SubmitOrder(&order, req.ProductIDs); err != nil {
			zap.L().Error("order: submit failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save order"})
			return
		}

		q.Enqueue(notify.AdminMessage(order))
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GetAllOrders lists the order log, most recent first.
func GetAllOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.Orders()
		if err != nil {
			zap.L().Error("order: list failed", zap.Error(err))
			c.JSON(http.StatusOK, []models.Order{})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
