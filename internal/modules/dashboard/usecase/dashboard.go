package usecase

import (
	"context"

	dashboarddomain "shelfcontrol/internal/modules/dashboard/domain"
	"shelfcontrol/internal/modules/dashboard/dto"
	dashboardin "shelfcontrol/internal/modules/dashboard/port/in"
	"shelfcontrol/internal/modules/dashboard/service"
	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
)

type Interactor struct {
	svc *service.DashboardService
}

func NewInteractor(svc *service.DashboardService) dashboardin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	overview, err := i.svc.Overview(ctx)
	if err != nil {
		return dto.OverviewOutput{}, err
	}
	out := dto.OverviewOutput{
		Active:        toTotalsOutput(overview.Active, deadlinedomain.FormatPhysical),
		TodaysGoal:    toTotalsOutput(overview.TodaysGoal, deadlinedomain.FormatPhysical),
		ReadingGoal:   toTotalsOutput(overview.ReadingGoal, deadlinedomain.FormatPhysical),
		ListeningGoal: toTotalsOutput(overview.ListeningGoal, deadlinedomain.FormatAudio),
	}
	for _, d := range overview.Deadlines {
		calc := overview.Calculations[d.ID]
		row := dto.RowOutput{
			ID:              d.ID,
			Title:           d.Title,
			Format:          string(d.Format),
			Status:          string(d.LatestStatus()),
			DueAt:           d.DueAt,
			CurrentProgress: d.CurrentProgress(),
			TotalQuantity:   d.TotalQuantity,
			Known:           calc.Known,
			Urgency:         string(calc.Urgency),
			UrgencyLabel:    calc.Urgency.Label(),
		}
		if calc.Known {
			row.DaysLeft = calc.DaysLeft
			row.UnitsPerDay = calc.UnitsPerDay
			row.PaceDisplay = deadlinedomain.FormatQuantity(d.Format, calc.UnitsPerDay) + "/day"
			row.RemainingDisplay = deadlinedomain.FormatQuantity(d.Format, calc.Remaining)
		} else {
			row.PaceDisplay = "N/A"
			row.RemainingDisplay = "N/A"
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func toTotalsOutput(totals dashboarddomain.Totals, format deadlinedomain.Format) dto.TotalsOutput {
	return dto.TotalsOutput{
		Total:          totals.Total,
		Current:        totals.Current,
		Display:        dashboarddomain.FormatDailyGoalDisplay(totals.Total, format),
		CurrentDisplay: dashboarddomain.FormatDailyGoalDisplay(totals.Current, format),
	}
}
