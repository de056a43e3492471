package api

import (
	"net/http"
	"strconv"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

// adminExpireRequests is an internal only api to trigger the sweep that
// finalizes enroute requests whose delivery window has elapsed
func (s *Server) adminExpireRequests(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "expire_enroute_requests",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}

// adminListMembers is an internal only api to page through registered
// members, newest first
func (s *Server) adminListMembers(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	if err != nil || limit < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	members, err := s.mongoStore.ListMembers(limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": members})
}

// adminVerifyMember is an internal only api to mark a member's identity as
// verified after an out-of-band check
func (s *Server) adminVerifyMember(c *gin.Context) {
	if err := s.mongoStore.VerifyMember(c.Param("memberID")); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
