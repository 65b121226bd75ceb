package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"

	activityinadapter "shelfcontrol/internal/modules/activity/adapter/in"
	activityoutadapter "shelfcontrol/internal/modules/activity/adapter/out"
	activityservice "shelfcontrol/internal/modules/activity/service"
	activityusecase "shelfcontrol/internal/modules/activity/usecase"
	dashboardinadapter "shelfcontrol/internal/modules/dashboard/adapter/in"
	dashboardoutadapter "shelfcontrol/internal/modules/dashboard/adapter/out"
	dashboardservice "shelfcontrol/internal/modules/dashboard/service"
	dashboardusecase "shelfcontrol/internal/modules/dashboard/usecase"
	deadlineinadapter "shelfcontrol/internal/modules/deadline/adapter/in"
	deadlineoutadapter "shelfcontrol/internal/modules/deadline/adapter/out"
	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
	deadlineservice "shelfcontrol/internal/modules/deadline/service"
	deadlineusecase "shelfcontrol/internal/modules/deadline/usecase"
	"shelfcontrol/internal/platform/clock"
	"shelfcontrol/internal/platform/config"
	"shelfcontrol/internal/platform/id"
	"shelfcontrol/internal/platform/tx"
	uiapp "shelfcontrol/internal/ui/app"
)

type App struct {
	DeadlineCLI  deadlineinadapter.CLIHandler
	DashboardCLI dashboardinadapter.CLIHandler
	ActivityCLI  activityinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	pace := paceConfig(cfg)

	store, err := deadlineoutadapter.NewSQLiteDeadlineStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	deadlineSvc := deadlineservice.NewDeadlineService(clk, ids, store, tx.NoopManager{}, pace)
	deadlineUC := deadlineusecase.NewInteractor(deadlineSvc)

	dashboardSvc := dashboardservice.NewDashboardService(clk, dashboardoutadapter.NewDeadlineSourceAdapter(deadlineUC), pace)
	dashboardUC := dashboardusecase.NewInteractor(dashboardSvc)

	activitySvc := activityservice.NewActivityService(activityoutadapter.NewDeadlineSourceAdapter(deadlineUC))
	activityUC := activityusecase.NewInteractor(activitySvc)

	return &App{
		DeadlineCLI:  deadlineinadapter.NewCLIHandler(deadlineUC),
		DashboardCLI: dashboardinadapter.NewCLIHandler(dashboardUC),
		ActivityCLI:  activityinadapter.NewCLIHandler(activityUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.DashboardCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func paceConfig(cfg config.Config) deadlinedomain.PaceConfig {
	pace := make(deadlinedomain.PaceConfig, len(cfg.Pace))
	for format, band := range cfg.Pace {
		pace[deadlinedomain.Format(format)] = deadlinedomain.PaceBands{
			Easy:    band.Easy,
			Tight:   band.Tight,
			Maximum: band.Maximum,
		}
	}
	return pace
}
