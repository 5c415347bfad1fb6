package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// @Summary 获取试卷
// @Description 返回试卷和题目，题目按 orderIndex 排序，不包含标准答案
// @Tags 测验模块
// @Produce json
// @Security BearerAuth
// @Param id path int true "试卷ID"
// @Success 200 {object} util.Response{data=service.QuizDetail}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	detail, err := c.Service.GetQuiz(ctx.Request.Context(), quizID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary 创建试卷
// @Tags 测验模块
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateQuizReq true "试卷及题目"
// @Success 201 {object} util.Response{data=service.QuizDetail}
// @Failure 400 {object} util.Response
// @Router /api/teacher/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req service.CreateQuizReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	detail, err := c.Service.CreateQuiz(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, detail)
}
