package api

import (
	"errors"
	"strings"
	"time"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"
)

const (
	scheduleLatencyMetric = "schedule_latency.response"
	scheduleErrorsMetric  = "schedule.errors"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	PriorityScheduling(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	SuggestAlgorithm(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

var errInvalidRequestFormat = errors.New("invalid request format")

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	logger   *zap.Logger
	registry metrics.Registry
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *zap.Logger, registry metrics.Registry) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:   config,
		logger:   logger,
		registry: registry,
	}
}

// newSimulation tags every log line of one request with a fresh simulation id.
func (s *SchedulerHandlerImpl) newSimulation() (string, *schedulers.Simulator) {
	simulationId := uuid.NewString()
	logger := s.logger.With(zap.String("simulation_id", simulationId))
	return simulationId, schedulers.NewSimulator(logger, s.config.RoundRobinTimeQuantum)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyFCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyRoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicySJF)
}

func (s *SchedulerHandlerImpl) PriorityScheduling(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyPriority)
}

// Schedule picks the policy from the :policy path parameter.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	policy, err := schedulers.ParsePolicy(ctx.Params("policy"))
	if err != nil {
		return s.badRequest(ctx, err)
	}
	return s.schedule(ctx, policy)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	defer metrics.GetOrRegisterTimer(scheduleLatencyMetric, s.registry).UpdateSince(time.Now())

	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	simulationId, simulator := s.newSimulation()

	result, err := simulator.Run(policy, request.ToProcesses(), simulator.QuantumOrDefault(request.TimeQuantum))
	if err != nil {
		return s.badRequest(ctx, err)
	}
	metrics.GetOrRegisterCounter(counterName(policy), s.registry).Inc(1)

	response := schedulers.GenerateResponse(result)
	response.SimulationId = simulationId
	return ctx.JSON(response)
}

// AllAlgorithms runs every policy over the same workload and adds the advisor's pick.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	defer metrics.GetOrRegisterTimer(scheduleLatencyMetric, s.registry).UpdateSince(time.Now())

	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	processes := request.ToProcesses()
	simulationId, simulator := s.newSimulation()

	results, err := simulator.Compare(ctx.UserContext(), processes, simulator.QuantumOrDefault(request.TimeQuantum))
	if err != nil {
		return s.badRequest(ctx, err)
	}
	suggestion, err := simulator.Suggest(processes)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	response := responses.CompareResponse{
		SimulationId: simulationId,
		Results:      make([]responses.ScheduleResponse, 0, len(results)),
		Suggestion:   schedulers.GenerateSuggestionResponse(suggestion),
	}
	for _, result := range results {
		metrics.GetOrRegisterCounter(counterName(result.Policy), s.registry).Inc(1)
		response.Results = append(response.Results, schedulers.GenerateResponse(result))
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) SuggestAlgorithm(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	simulationId, simulator := s.newSimulation()
	suggestion, err := simulator.Suggest(request.ToProcesses())
	if err != nil {
		return s.badRequest(ctx, err)
	}
	metrics.GetOrRegisterCounter("schedule.suggest", s.registry).Inc(1)

	response := schedulers.GenerateSuggestionResponse(suggestion)
	response.SimulationId = simulationId
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		s.logger.Warn("invalid request format", zap.Error(err))
		return nil, errInvalidRequestFormat
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx, err error) error {
	metrics.GetOrRegisterCounter(scheduleErrorsMetric, s.registry).Inc(1)
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: err.Error()})
}

func counterName(policy schedulers.Policy) string {
	return "schedule." + strings.ToLower(policy.String())
}
