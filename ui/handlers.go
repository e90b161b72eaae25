package ui

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"statwizard/app"
	"statwizard/domain/core"
	"statwizard/domain/wizard"
)

func (s *Server) handleHealth(c *gin.Context) {
	h := s.service.HealthCheck()
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"status":   h.Status,
		"profiles": h.Profiles,
	})
}

func (s *Server) handleTree(c *gin.Context) {
	desc, err := s.service.Describe(c.Query("profile"))
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		s.log.Error("describe failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"version": desc.Version,
		"profile": desc.ProfileID,
		"tree":    desc.Tree,
	})
}

func (s *Server) handleReset(c *gin.Context) {
	s.service.Reset()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Session cleared."})
}

func (s *Server) handleResolve(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read request body"})
		return
	}
	if len(body) > 0 && !gjson.ValidBytes(body) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "request body must be valid JSON"})
		return
	}
	payload := gjson.ParseBytes(body)

	profileID := payload.Get("profile").String()
	if profileID == "" {
		profileID = c.Query("profile")
	}

	// answers is optional; when absent the session copy applies. When
	// present it must be a flat object of question id to option value.
	answers, shapeErr := parseAnswers(payload.Get("answers"))
	if shapeErr != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": shapeErr})
		return
	}

	var resp *app.ResolveResponse
	if payload.Get("merge").Bool() && answers != nil {
		resp, err = s.service.ResolveMerged(profileID, answers)
	} else {
		resp, err = s.service.Resolve(profileID, answers)
	}
	if err != nil {
		s.writeResolveError(c, err)
		return
	}

	switch resp.Status {
	case app.StatusMissingAnswers:
		c.JSON(http.StatusBadRequest, gin.H{
			"success":           false,
			"error":             "More answers are needed to determine the test.",
			"missing_questions": resp.MissingQuestions,
			"active_questions":  resp.ActiveQuestions,
		})
	case app.StatusNoRuleMatched:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No rule matched the given answers.",
			"answers": resp.Answers,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"result":  resp.Result,
			"answers": resp.Answers,
		})
	}
}

// parseAnswers extracts the answers object, reporting a shape problem as a
// user-facing message. A missing field returns a nil set.
func parseAnswers(field gjson.Result) (wizard.AnswerSet, string) {
	if !field.Exists() {
		return nil, ""
	}
	if !field.IsObject() {
		return nil, `The "answers" field must be a JSON object.`
	}
	answers := wizard.AnswerSet{}
	malformed := ""
	field.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			malformed = `Every value in "answers" must be a string option value (offending key: "` + key.String() + `").`
			return false
		}
		answers[key.String()] = value.String()
		return true
	})
	if malformed != "" {
		return nil, malformed
	}
	return answers, ""
}

func (s *Server) writeResolveError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case core.IsAnswerError(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		s.log.Error("resolve failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
	}
}
