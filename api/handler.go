package api

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"sjf-simulator/config"
	"sjf-simulator/internal/core"
	"sjf-simulator/internal/requests"
	"sjf-simulator/internal/responses"
	"sjf-simulator/internal/schedulers"
	"sjf-simulator/internal/store"
)

const (
	codeBadRequest   = "BAD_REQUEST"
	codeInvalidInput = "INVALID_INPUT"
	codeComputation  = "COMPUTATION_ERROR"
	codeNotFound     = "NOT_FOUND"
	codeBusy         = "BUSY"
	codeInternal     = "INTERNAL_ERROR"
)

// HistoryStore keeps served simulations; *store.SQLiteStore implements it.
type HistoryStore interface {
	Save(ctx context.Context, processes []core.Process, result core.SimulationResult) (string, error)
	Get(ctx context.Context, id string) (*store.Record, error)
	List(ctx context.Context, limit int) ([]store.Summary, error)
}

type SchedulerHandler interface {
	ShortestJobFirst(ctx *fiber.Ctx) error
	GetSimulation(ctx *fiber.Ctx) error
	ListSimulations(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	history HistoryStore
	slots   chan struct{}
}

// NewSchedulerHandlerImpl creates the handler. history may be nil, in which
// case simulations are not recorded and the history routes answer 404.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, history HistoryStore) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:  config,
		history: history,
		slots:   make(chan struct{}, config.MaxConcurrent),
	}
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return respondError(ctx, fiber.StatusBadRequest, codeBadRequest, "invalid request format")
	}
	if len(request.Jobs) > s.config.MaxProcesses {
		return respondError(ctx, fiber.StatusBadRequest, codeInvalidInput,
			"too many processes: at most "+strconv.Itoa(s.config.MaxProcesses)+" allowed")
	}

	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	default:
		return respondError(ctx, fiber.StatusServiceUnavailable, codeBusy, "too many simulations in progress")
	}

	processes := request.ToProcesses()
	result, err := schedulers.ScheduleShortestJobFirst(processes)
	if err != nil {
		var invalid *schedulers.InvalidInputError
		if errors.As(err, &invalid) {
			log.WithField("pid", invalid.ProcessID).Debugf("rejected simulation: %s", invalid.Reason)
			return respondError(ctx, fiber.StatusBadRequest, codeInvalidInput, err.Error())
		}
		log.WithError(err).Error("simulation failed")
		return respondError(ctx, fiber.StatusInternalServerError, codeComputation, err.Error())
	}

	response := responses.FromResult(result)
	if s.history != nil {
		id, err := s.history.Save(ctx.UserContext(), processes, result)
		if err != nil {
			log.WithError(err).Warn("could not record simulation")
		} else {
			response.SimulationId = id
		}
	}

	if err := ctx.JSON(response); err != nil {
		log.WithError(err).WithField("simulation_id", response.SimulationId).Error("encode simulation")
		return err
	}
	log.WithFields(log.Fields{
		"processes":       len(processes),
		"slots":           len(result.Timeline),
		"cpu_utilization": result.CPUUtilization,
		"simulation_id":   response.SimulationId,
	}).Info("simulation served")
	return nil
}

func (s *SchedulerHandlerImpl) GetSimulation(ctx *fiber.Ctx) error {
	if s.history == nil {
		return respondError(ctx, fiber.StatusNotFound, codeNotFound, "simulation history is disabled")
	}

	id := ctx.Params("id")
	record, err := s.history.Get(ctx.UserContext(), id)
	if errors.Is(err, store.ErrNotFound) {
		return respondError(ctx, fiber.StatusNotFound, codeNotFound, "simulation '"+id+"' not found")
	}
	if err != nil {
		log.WithError(err).WithField("simulation_id", id).Error("load simulation")
		return respondError(ctx, fiber.StatusInternalServerError, codeInternal, "could not load simulation")
	}

	response := responses.FromResult(record.Result)
	response.SimulationId = record.ID
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ListSimulations(ctx *fiber.Ctx) error {
	if s.history == nil {
		return respondError(ctx, fiber.StatusNotFound, codeNotFound, "simulation history is disabled")
	}

	limit := ctx.QueryInt("limit", s.config.History.ListLimit)
	if limit <= 0 || limit > s.config.History.ListLimit {
		limit = s.config.History.ListLimit
	}
	summaries, err := s.history.List(ctx.UserContext(), limit)
	if err != nil {
		log.WithError(err).Error("list simulations")
		return respondError(ctx, fiber.StatusInternalServerError, codeInternal, "could not list simulations")
	}
	return ctx.JSON(fiber.Map{"simulations": summaries})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func respondError(ctx *fiber.Ctx, status int, code, message string) error {
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: message, Code: code})
}
