// internal/orchestrator/job.go
package orchestrator

import (
	"context"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	apperrors "creative-brief/internal/common/errors"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/validation"
	"creative-brief/internal/models"
)

// JobHandler runs the pipeline as the BPMN service task
// "generate-creative-brief".
type JobHandler struct {
	pipeline     *Pipeline
	defaults     map[string]interface{}
	timeout      time.Duration
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewJobHandler(pipeline *Pipeline, defaults map[string]interface{}, timeout time.Duration, log logger.Logger) *JobHandler {
	log = log.WithFields(map[string]interface{}{"component": "brief-job"})
	return &JobHandler{
		pipeline:     pipeline,
		defaults:     defaults,
		timeout:      timeout,
		errorHandler: apperrors.NewErrorHandler(log),
		logger:       log,
	}
}

type jobInput struct {
	Stakeholder models.StakeholderInput
	Options     RunOptions
}

func (h *JobHandler) Handle(client worker.JobClient, job entities.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	h.logger.Info("Processing brief job", map[string]interface{}{
		"jobKey":             job.GetKey(),
		"processInstanceKey": job.GetProcessInstanceKey(),
	})

	input, err := h.parseJobInput(job)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	brief, err := h.pipeline.Run(ctx, input.Stakeholder, input.Options)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	request, err := client.NewCompleteJobCommand().JobKey(job.GetKey()).VariablesFromMap(jobVariables(brief))
	if err != nil {
		h.logger.Error("Failed to create complete job command", map[string]interface{}{
			"jobKey": job.GetKey(),
			"error":  err.Error(),
		})
		return
	}
	if _, err := request.Send(ctx); err != nil {
		h.logger.Error("Failed to complete job", map[string]interface{}{
			"jobKey": job.GetKey(),
			"error":  err.Error(),
		})
		return
	}
	h.logger.Info("Brief job completed", map[string]interface{}{
		"jobKey":  job.GetKey(),
		"briefId": brief.ID,
	})
}

// parseJobInput reads the "stakeholder" map variable (merged over the
// configured defaults) and the optional renderPdf, notify and recipients
// flags.
func (h *JobHandler) parseJobInput(job entities.Job) (*jobInput, error) {
	variables, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, apperrors.NewInvalidStakeholderInputError("job variables are not a JSON object: " + err.Error())
	}

	overrides := map[string]interface{}{}
	if raw, ok := variables["stakeholder"]; ok {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, apperrors.NewInvalidStakeholderInputError("stakeholder must be an object")
		}
		overrides = m
	}

	result, err := validation.ValidateStakeholderInput(overrides)
	if err != nil {
		return nil, apperrors.NewInvalidStakeholderInputError(err.Error())
	}
	if !result.Valid {
		return nil, apperrors.NewInvalidStakeholderInputError(result.Summary())
	}

	input := &jobInput{
		Stakeholder: models.StakeholderInput(h.defaults).Merge(overrides),
	}
	if v, ok := variables["renderPdf"].(bool); ok {
		input.Options.RenderPDF = v
	}
	if v, ok := variables["notify"].(bool); ok {
		input.Options.Notify = v
	}
	if list, ok := variables["recipients"].([]interface{}); ok {
		for _, r := range list {
			if s, ok := r.(string); ok && s != "" {
				input.Options.Recipients = append(input.Options.Recipients, s)
			}
		}
	}
	return input, nil
}

func jobVariables(brief *models.Brief) map[string]interface{} {
	vars := map[string]interface{}{
		"briefId":       brief.ID,
		"sections":      brief.Sections,
		"totalSections": len(brief.Sections),
		"researchTime":  brief.ResearchTime,
		"agentsUsed":    brief.AgentsUsed,
		"generatedAt":   brief.GeneratedAt,
	}
	if brief.PDFPath != "" {
		vars["pdfPath"] = brief.PDFPath
	}
	if brief.Model != "" {
		vars["model"] = brief.Model
	}
	return vars
}
