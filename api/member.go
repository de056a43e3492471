package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kizuna-community/kizuna-api/consts"
	"github.com/kizuna-community/kizuna-api/countdown"
	"github.com/kizuna-community/kizuna-api/store"
	"github.com/kizuna-community/kizuna-api/trust"
)

// resolveMemberID maps the literal "me" to the authenticated member's id.
func resolveMemberID(c *gin.Context, ownID string) string {
	id := c.Param("memberID")
	if id == "me" {
		return ownID
	}
	return id
}

// requireSelf rejects writes aimed at another member's profile.
func requireSelf(c *gin.Context, ownID string) bool {
	id := c.Param("memberID")
	if id != "me" && id != ownID {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return false
	}
	return true
}

// memberProfile is the API to query a member profile. Asking for "me" (or
// your own id) also returns the trust progression.
func (s *Server) memberProfile(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	id := resolveMemberID(c, member.ID)
	if id == member.ID {
		c.JSON(http.StatusOK, gin.H{
			"result":      member,
			"progression": trust.NextLevel(member.XP),
		})
		return
	}

	other, err := s.mongoStore.GetMember(id)
	if err != nil {
		if err == store.ErrMemberNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorMemberNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": other})
}

// memberUpdateProfile is the API to update the authenticated member's
// profile fields
func (s *Server) memberUpdateProfile(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}
	if !requireSelf(c, member.ID) {
		return
	}

	var params store.MemberProfileUpdate

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := s.mongoStore.UpdateMemberProfile(member.ID, params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// memberUpdateLocation is the API to set the authenticated member's home
// location
func (s *Server) memberUpdateLocation(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}
	if !requireSelf(c, member.ID) {
		return
	}

	var params struct {
		Latitude  float64 `json:"latitude" binding:"required"`
		Longitude float64 `json:"longitude" binding:"required"`
		Address   string  `json:"address"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.UpdateMemberLocation(member.ID, params.Latitude, params.Longitude, params.Address); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// memberCooldown is the API to query the authenticated member's claim
// cooldown state.
func (s *Server) memberCooldown(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}
	if !requireSelf(c, member.ID) {
		return
	}

	remaining := countdown.RemainingCooldown(member, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"on_cooldown":       remaining > 0,
		"remaining_seconds": int64(remaining.Seconds()),
		"window_seconds":    int64(consts.CooldownWindow.Seconds()),
		"cooldown_expiry":   member.CooldownExpiry,
	})
}

// memberBadges is the API to list badges a member has earned
func (s *Server) memberBadges(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	badges, err := s.mongoStore.ListMemberBadges(resolveMemberID(c, member.ID))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": badges})
}

// memberActivities is the API to list feed entries involving a member
func (s *Server) memberActivities(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	activities, err := s.mongoStore.ListMemberActivities(resolveMemberID(c, member.ID), 0)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": activities})
}

// memberRequests is the API to list requests a member asked for or supported
func (s *Server) memberRequests(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	requests, err := s.mongoStore.ListMemberRequests(resolveMemberID(c, member.ID), 0)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}
