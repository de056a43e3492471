package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kizuna-community/kizuna-api/schema"
	"github.com/kizuna-community/kizuna-api/store"
)

// listBadges is the API for browsing the badge catalog
func (s *Server) listBadges(c *gin.Context) {
	badges, err := s.mongoStore.ListBadges()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": badges})
}

// getBadge is the API for fetching a single badge
func (s *Server) getBadge(c *gin.Context) {
	badge, err := s.mongoStore.GetBadge(c.Param("badgeID"))
	if err != nil {
		if err == store.ErrBadgeNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorBadgeNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": badge})
}

// badgeProgress is the API for checking which badges the member has earned
// and which they are now eligible for. Eligible badges are awarded on the
// spot so the response reflects the post-check state.
func (s *Server) badgeProgress(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	eligible, earned, err := s.mongoStore.CheckBadgeProgress(member.ID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	awarded := make([]schema.Badge, 0, len(eligible))
	for _, badge := range eligible {
		granted, err := s.mongoStore.AwardBadge(member.ID, badge.ID)
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		if granted {
			awarded = append(awarded, badge)
			s.recordActivity(schema.Activity{
				Type:     schema.ActivityBadgeAwarded,
				MemberID: member.ID,
				Message:  badge.Name,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"earned":  earned,
		"awarded": awarded,
	})
}

// createBadge is an internal only api to add a badge to the catalog
func (s *Server) createBadge(c *gin.Context) {
	var badge schema.Badge

	if err := c.BindJSON(&badge); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.CreateBadge(badge); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
