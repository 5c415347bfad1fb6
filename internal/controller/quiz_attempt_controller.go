package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizAttemptController struct {
	Attempts  *service.QuizAttemptService
	History   *service.QuizHistoryService
	Summaries *service.QuizSummaryService
}

func NewQuizAttemptController(attempts *service.QuizAttemptService, history *service.QuizHistoryService, summaries *service.QuizSummaryService) *QuizAttemptController {
	return &QuizAttemptController{Attempts: attempts, History: history, Summaries: summaries}
}

// @Summary 提交试卷
// @Description 同一题重复作答时以最后一次为准
// @Tags 测验模块
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "试卷ID"
// @Param body body service.SubmitQuizReq true "作答内容"
// @Success 200 {object} util.Response{data=service.SubmitQuizResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizAttemptController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	var req service.SubmitQuizReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Attempts.SubmitQuiz(ctx.Request.Context(), quizID, user.UserID, req.Attempt)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 获取作答历史
// @Description 当前用户在该试卷上的所有作答，最近的在前
// @Tags 测验模块
// @Produce json
// @Security BearerAuth
// @Param id path int true "试卷ID"
// @Success 200 {object} util.Response{data=[]service.QuizHistoryEntry}
// @Router /api/quizzes/{id}/history [get]
func (c *QuizAttemptController) GetHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	history, err := c.History.GetHistory(ctx.Request.Context(), quizID, user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, history)
}

// @Summary 获取作答总结
// @Description 逐题返回用户答案和交卷时的判定，只有作答者本人可以查看
// @Tags 测验模块
// @Produce json
// @Security BearerAuth
// @Param id path int true "作答ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz-attempts/{id}/summary [get]
func (c *QuizAttemptController) GetSummary(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attemptID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	items, err := c.Summaries.GetSummary(ctx.Request.Context(), attemptID, user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"summary": items})
}

// @Summary 删除作答记录
// @Description 删除一次作答及其全部答案，学生可以重新作答
// @Tags 测验模块
// @Produce json
// @Security BearerAuth
// @Param id path int true "作答ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/teacher/quiz-attempts/{id} [delete]
func (c *QuizAttemptController) DeleteAttempt(ctx *gin.Context) {
	attemptID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if err := c.Attempts.DeleteAttempt(ctx.Request.Context(), attemptID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "attempt deleted"})
}
