package router

import (
	"context"
	"errors"

	"resume-analyzer-go/internal/api/handler"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	api.POST("/resume/upload", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的文件
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		// JD文本可选，为空时执行简历质量分析
		jdText := ctx.PostForm("job_description")
		// 获取来源渠道
		sourceChannel := ctx.PostForm("source_channel")
		if sourceChannel == "" {
			sourceChannel = "web_upload" // 默认值
		}

		// 打开文件
		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		// 处理上传并分析
		resp, err := resumeHandler.HandleUploadAndAnalyze(
			c,
			file,
			fileHeader.Size,
			fileHeader.Filename,
			jdText,
			sourceChannel,
		)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/resume/:submission_uuid/analysis", func(c context.Context, ctx *app.RequestContext) {
		submissionUUID := ctx.Param("submission_uuid")
		if submissionUUID == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "submission_uuid不能为空"})
			return
		}

		result, err := resumeHandler.GetAnalysis(c, submissionUUID)
		if err != nil {
			if errors.Is(err, handler.ErrAnalysisNotFound) {
				ctx.JSON(consts.StatusNotFound, utils.H{"error": "分析结果不存在"})
				return
			}
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, result)
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
