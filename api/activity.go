package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// listActivities is the API for the community activity feed. Passing a
// `since` timestamp (unix milliseconds) returns only entries newer than it,
// which is how clients catch up after a reconnect.
func (s *Server) listActivities(c *gin.Context) {
	if sinceQuery := c.Query("since"); sinceQuery != "" {
		since, err := strconv.ParseInt(sinceQuery, 10, 64)
		if err != nil || since < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}

		activities, err := s.mongoStore.ListRecentActivities(time.UnixMilli(since))
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"result": activities})
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	if err != nil || limit < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	activities, err := s.mongoStore.ListActivities(limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": activities})
}
