package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kizuna-community/kizuna-api/schema"
	"github.com/kizuna-community/kizuna-api/store"
)

// submitRating is the API for rating the other participant of a fulfilled
// request
func (s *Server) submitRating(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	var params struct {
		RequestID string `json:"request_id" binding:"required"`
		RatedID   string `json:"rated_id" binding:"required"`
		Score     int    `json:"score" binding:"required"`
		Comment   string `json:"comment"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	rated, err := s.mongoStore.SubmitRating(params.RequestID, member.ID, params.RatedID, params.Score, params.Comment)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		case store.ErrInvalidRatingScore:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRatingScore, err)
		case store.ErrRatingNotFulfilled:
			abortWithEncoding(c, http.StatusConflict, errorRatingNotFulfilled, err)
		case store.ErrRatingNotInvolved:
			abortWithEncoding(c, http.StatusForbidden, errorRatingNotInvolved, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.recordActivity(schema.Activity{
		Type:           schema.ActivityRatingSubmitted,
		MemberID:       member.ID,
		TargetMemberID: rated.ID,
		RequestID:      params.RequestID,
	})

	c.JSON(http.StatusOK, gin.H{"result": rated})
}

// memberRatings is the API to list ratings a member has received
func (s *Server) memberRatings(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	ratings, err := s.mongoStore.ListMemberRatings(resolveMemberID(c, member.ID))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": ratings})
}
