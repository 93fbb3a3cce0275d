package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vidnote/audiofetch/internal/admission"
	"github.com/vidnote/audiofetch/internal/extract"
	"github.com/vidnote/audiofetch/internal/model"
	"github.com/vidnote/audiofetch/internal/session"
)

// Runner is the pipeline surface the request-handling layer depends on.
type Runner interface {
	Run(ctx context.Context, req model.SourceRequest) model.PipelineResult
}

// Pipeline wires the stages of one retrieval invocation. Each invocation
// is a self-contained synchronous unit of work; concurrency belongs to
// the host running multiple invocations.
type Pipeline struct {
	admitter  *admission.Admitter
	extractor extract.Extractor
	store     *session.Store
	logger    *zap.Logger
}

// New creates a Pipeline from its collaborators.
func New(admitter *admission.Admitter, extractor extract.Extractor, store *session.Store, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		admitter:  admitter,
		extractor: extractor,
		store:     store,
		logger:    logger,
	}
}

// Run executes the pipeline for one request. Stage order is strict: no
// stage begins before the prior stage succeeds, and a stage failure
// aborts the invocation with its classified kind.
func (p *Pipeline) Run(ctx context.Context, req model.SourceRequest) model.PipelineResult {
	logger := p.logger.With(zap.String("job_id", uuid.NewString()))
	logger.Info("pipeline started", zap.String("url", req.URL))

	admitted, err := p.admitter.Admit(req.URL)
	if err != nil {
		return p.fail(logger, "admission rejected url", err, model.ErrInvalidInput)
	}
	logger.Info("url admitted",
		zap.String("normalized_url", admitted.Normalized),
		zap.String("platform", admitted.Platform.String()))

	meta, err := p.extractor.ResolveMetadata(ctx, admitted.Normalized)
	if err != nil {
		return p.fail(logger, "metadata resolution failed", err, model.ErrMetadataUnavailable)
	}
	logger.Info("metadata resolved", zap.String("title", meta.Title))

	sess, err := p.store.Allocate(meta.Title)
	if err != nil {
		return p.fail(logger, "session allocation failed", err, model.ErrStorage)
	}

	if err := sess.Lock(); err != nil {
		return p.fail(logger, "session lock failed", err, model.ErrStorage)
	}
	defer sess.Unlock()

	if err := p.extractor.Download(ctx, admitted.Normalized, sess.RootPath(), req.PartSelector); err != nil {
		return p.fail(logger, "extraction failed", err, model.ErrExtractionFailed)
	}

	result, err := collect(sess.RootPath(), meta.Title)
	if err != nil {
		return p.fail(logger, "result aggregation failed", err, model.ErrStorage)
	}

	logger.Info("pipeline completed",
		zap.String("session_path", result.SessionPath),
		zap.Int("asset_count", len(result.Assets)))
	return result
}

// fail logs a stage failure and converts it into a failed result,
// classifying unstructured errors under the stage's fallback kind.
func (p *Pipeline) fail(logger *zap.Logger, msg string, err error, fallback model.ErrorKind) model.PipelineResult {
	perr := model.Classify(err, fallback)
	logger.Warn(msg,
		zap.String("kind", perr.Kind.String()),
		zap.String("reason", perr.Message))
	return model.Fail(perr)
}
