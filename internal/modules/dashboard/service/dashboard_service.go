package service

import (
	"context"

	"shelfcontrol/internal/modules/dashboard/domain"
	dashboardout "shelfcontrol/internal/modules/dashboard/port/out"
	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
	"shelfcontrol/internal/platform/clock"
)

type Overview struct {
	Deadlines     []deadlinedomain.Deadline
	Calculations  map[string]deadlinedomain.Calculation
	Active        domain.Totals
	TodaysGoal    domain.Totals
	ReadingGoal   domain.Totals
	ListeningGoal domain.Totals
}

type DashboardService struct {
	clock  clock.Clock
	source dashboardout.DeadlineSource
	pace   deadlinedomain.PaceConfig
}

func NewDashboardService(clock clock.Clock, source dashboardout.DeadlineSource, pace deadlinedomain.PaceConfig) *DashboardService {
	return &DashboardService{clock: clock, source: source, pace: pace}
}

func (s *DashboardService) Overview(ctx context.Context) (Overview, error) {
	deadlines, err := s.source.ListDeadlines(ctx)
	if err != nil {
		return Overview{}, err
	}
	now := s.clock.Now()

	getCalculations := func(d deadlinedomain.Deadline) deadlinedomain.Calculation {
		return deadlinedomain.Calculate(d, d.CurrentProgress(), now, s.pace.BandsFor(d.Format))
	}
	getProgress := func(d deadlinedomain.Deadline) float64 {
		return d.CurrentProgress()
	}

	overview := Overview{
		Deadlines:    deadlines,
		Calculations: make(map[string]deadlinedomain.Calculation, len(deadlines)),
		Active:       domain.StatusAwareTotals(deadlines, getCalculations, getProgress),
		TodaysGoal:   domain.TodaysGoalTotals(deadlines, getProgress, now, s.pace.BandsFor),
		ReadingGoal: domain.TodaysGoalTotals(
			domain.FilterByFormat(deadlines, deadlinedomain.FormatPhysical, deadlinedomain.FormatEBook),
			getProgress, now, s.pace.BandsFor),
		ListeningGoal: domain.TodaysGoalTotals(
			domain.FilterByFormat(deadlines, deadlinedomain.FormatAudio),
			getProgress, now, s.pace.BandsFor),
	}
	for _, d := range deadlines {
		overview.Calculations[d.ID] = getCalculations(d)
	}
	return overview, nil
}
