package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"fittrack/config"
	"fittrack/internal/domain/entity"
	"fittrack/internal/infra/auth"
	logs "fittrack/internal/infra/log"
	"fittrack/internal/infra/persistence/sqlite"
	"fittrack/internal/infra/session"
	"fittrack/internal/usecase"
	"fittrack/internal/usecase/impl"

	"go.uber.org/fx"
)

// cliApp collects the usecases the subcommands dispatch to.
type cliApp struct {
	fx.In

	Accounts   usecase.AccountUsecase
	Activities usecase.ActivityUsecase
	Wellness   usecase.WellnessUsecase
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	if command == "help" {
		printUsage()

		return
	}

	if err := run(command, os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	var cli cliApp

	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Populate(&cli),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	return dispatch(context.Background(), &cli, command, args)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewUserRepository,
			sqlite.NewActivityRepository,
			sqlite.NewWellnessRepository,
			sqlite.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPBKDF2Hasher,
			session.NewFileStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewActivityService,
			impl.NewWellnessService,
		),
	)
}

func dispatch(ctx context.Context, cli *cliApp, command string, args []string) error {
	switch command {
	case "register":
		return cmdRegister(ctx, cli, args)
	case "login":
		return cmdLogin(ctx, cli, args)
	case "logout":
		return cli.Accounts.Logout(ctx)
	case "whoami":
		return cmdWhoami(ctx, cli)
	case "profile":
		return cmdProfile(ctx, cli, args)
	case "change-password":
		return cmdChangePassword(ctx, cli, args)
	case "activities":
		return cmdActivities(ctx, cli)
	case "add-activity":
		return cmdAddActivity(ctx, cli, args)
	case "remove-activity":
		return cmdRemoveActivity(ctx, cli, args)
	case "log":
		return cmdLog(ctx, cli, args)
	case "today":
		return cmdToday(ctx, cli)
	case "stats":
		return cmdStats(ctx, cli, args)
	case "workout":
		return cmdWorkout(ctx, cli, args)
	case "workouts":
		return cmdWorkouts(ctx, cli, args)
	case "measure":
		return cmdMeasure(ctx, cli, args)
	case "measurements":
		return cmdMeasurements(ctx, cli, args)
	case "delete-account":
		return cmdDeleteAccount(ctx, cli, args)
	default:
		printUsage()

		return fmt.Errorf("unknown command %q", command)
	}
}

// requireUser resolves the logged-in user or fails the command.
func requireUser(ctx context.Context, cli *cliApp) (*entity.User, error) {
	user := cli.Accounts.CurrentUser(ctx)
	if user == nil {
		return nil, fmt.Errorf("not logged in, run 'fittrack login' first")
	}

	return user, nil
}

func cmdRegister(ctx context.Context, cli *cliApp, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := cli.Accounts.Register(ctx, &usecase.RegisterInput{
		FullName: *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s (%s) with a starter activity set. You are logged in.\n", user.FullName, user.Email)

	return nil
}

func cmdLogin(ctx context.Context, cli *cliApp, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := cli.Accounts.Login(ctx, &usecase.LoginInput{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", user.FullName, user.Email)

	return nil
}

func cmdWhoami(ctx context.Context, cli *cliApp) error {
	user := cli.Accounts.CurrentUser(ctx)
	if user == nil {
		fmt.Println("Not logged in")

		return nil
	}
	fmt.Printf("%s (%s)\n", user.FullName, user.Email)
	if user.Profile != nil && user.Profile.FitnessGoal != "" {
		fmt.Printf("Goal: %s\n", user.Profile.FitnessGoal)
	}

	return nil
}

func cmdProfile(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	age := fs.Int("age", 0, "age in years")
	weight := fs.Float64("weight", 0, "weight in kg")
	height := fs.Float64("height", 0, "height in cm")
	gender := fs.String("gender", "", "gender")
	goal := fs.String("goal", "", "fitness goal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only flags the user actually passed become updates.
	input := &usecase.UpdateProfileInput{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "age":
			input.Age = age
		case "weight":
			input.WeightKg = weight
		case "height":
			input.HeightCm = height
		case "gender":
			input.Gender = gender
		case "goal":
			input.FitnessGoal = goal
		}
	})

	if err := cli.Accounts.UpdateProfile(ctx, user.ID, input); err != nil {
		return err
	}
	fmt.Println("Profile updated")

	return nil
}

func cmdChangePassword(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("change-password", flag.ContinueOnError)
	current := fs.String("current", "", "current password")
	newPassword := fs.String("new", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	err = cli.Accounts.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{
		CurrentPassword: *current,
		NewPassword:     *newPassword,
	})
	if err != nil {
		return err
	}
	fmt.Println("Password changed")

	return nil
}

func cmdActivities(ctx context.Context, cli *cliApp) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	activities, err := cli.Activities.ListActivities(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, activity := range activities {
		fmt.Printf("%4d  %-20s %g %s [%s]\n",
			activity.ID, activity.Name, activity.TargetValue, activity.TargetUnit, activity.Category)
	}

	return nil
}

func cmdAddActivity(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("add-activity", flag.ContinueOnError)
	name := fs.String("name", "", "activity name")
	description := fs.String("desc", "", "description")
	icon := fs.String("icon", "", "icon identifier")
	target := fs.Float64("target", 0, "daily target value")
	unit := fs.String("unit", "", "target unit")
	category := fs.String("category", "", "category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	activity, err := cli.Activities.CreateActivity(ctx, user.ID, &usecase.CreateActivityInput{
		Name:        *name,
		Description: *description,
		Icon:        *icon,
		TargetValue: *target,
		TargetUnit:  *unit,
		Category:    *category,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added activity %d: %s\n", activity.ID, activity.Name)

	return nil
}

func cmdRemoveActivity(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("remove-activity", flag.ContinueOnError)
	id := fs.Uint("id", 0, "activity id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cli.Activities.DeleteActivity(ctx, user.ID, uint(*id)); err != nil {
		return err
	}
	fmt.Println("Activity removed; its history is kept")

	return nil
}

func cmdLog(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("log", flag.ContinueOnError)
	id := fs.Uint("activity", 0, "activity id")
	date := fs.String("date", time.Now().Format(entity.DateLayout), "day to log (YYYY-MM-DD)")
	done := fs.Bool("done", true, "mark completed")
	value := fs.Float64("value", 0, "achieved value")
	notes := fs.String("notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	err = cli.Activities.LogActivity(ctx, user.ID, &usecase.LogActivityInput{
		ActivityID:  uint(*id),
		Date:        *date,
		Completed:   *done,
		ActualValue: *value,
		Notes:       *notes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged activity %d for %s\n", *id, *date)

	return nil
}

func cmdToday(ctx context.Context, cli *cliApp) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	today := time.Now().Format(entity.DateLayout)

	activities, err := cli.Activities.ListActivities(ctx, user.ID)
	if err != nil {
		return err
	}
	logs, err := cli.Activities.LogsForDate(ctx, user.ID, today)
	if err != nil {
		return err
	}

	fmt.Printf("Today (%s):\n", today)
	for _, activity := range activities {
		mark := " "
		if log, ok := logs[activity.ID]; ok && log.Completed {
			mark = "x"
		}
		fmt.Printf("  [%s] %-20s (%g %s)\n", mark, activity.Name, activity.TargetValue, activity.TargetUnit)
	}

	return nil
}

func cmdStats(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	now := time.Now()
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	from := fs.String("from", now.AddDate(0, 0, -6).Format(entity.DateLayout), "range start (YYYY-MM-DD)")
	to := fs.String("to", now.Format(entity.DateLayout), "range end (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	stats, err := cli.Activities.Stats(ctx, user.ID, *from, *to)
	if err != nil {
		return err
	}

	fmt.Printf("Completion %s to %s:\n", *from, *to)
	for _, stat := range stats {
		fmt.Printf("  %-20s %d/%d (%.0f%%)\n", stat.Name, stat.CompletedCount, stat.TotalCount, stat.CompletionRate*100)
	}

	return nil
}

func cmdWorkout(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("workout", flag.ContinueOnError)
	workoutType := fs.String("type", "", "workout type, e.g. running")
	minutes := fs.Int("minutes", 0, "duration in minutes")
	calories := fs.Float64("calories", 0, "calories burned")
	intensity := fs.String("intensity", "", "low, moderate or high")
	notes := fs.String("notes", "", "notes")
	date := fs.String("date", time.Now().Format(entity.DateLayout), "session day (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logged, err := cli.Wellness.LogWorkout(ctx, user.ID, &usecase.LogWorkoutInput{
		WorkoutType:     *workoutType,
		DurationMinutes: *minutes,
		CaloriesBurned:  *calories,
		Intensity:       *intensity,
		Notes:           *notes,
		Date:            *date,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s workout %d on %s\n", logged.WorkoutType, logged.ID, logged.SessionDate)

	return nil
}

func cmdWorkouts(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	now := time.Now()
	fs := flag.NewFlagSet("workouts", flag.ContinueOnError)
	from := fs.String("from", now.AddDate(0, 0, -29).Format(entity.DateLayout), "range start (YYYY-MM-DD)")
	to := fs.String("to", now.Format(entity.DateLayout), "range end (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sessions, err := cli.Wellness.ListWorkouts(ctx, user.ID, *from, *to)
	if err != nil {
		return err
	}
	for _, session := range sessions {
		fmt.Printf("  %s  %-12s %3d min", session.SessionDate, session.WorkoutType, session.DurationMinutes)
		if session.Intensity != "" {
			fmt.Printf("  %s", session.Intensity)
		}
		fmt.Println()
	}

	return nil
}

func cmdMeasure(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("measure", flag.ContinueOnError)
	weight := fs.Float64("weight", 0, "weight in kg")
	fat := fs.Float64("fat", 0, "body fat percentage")
	muscle := fs.Float64("muscle", 0, "muscle mass in kg")
	waist := fs.Float64("waist", 0, "waist circumference in cm")
	date := fs.String("date", time.Now().Format(entity.DateLayout), "measurement day (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	measurement, err := cli.Wellness.LogMeasurement(ctx, user.ID, &usecase.LogMeasurementInput{
		WeightKg:           *weight,
		BodyFatPercentage:  *fat,
		MuscleMassKg:       *muscle,
		WaistCircumference: *waist,
		Date:               *date,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged measurement %d on %s\n", measurement.ID, measurement.MeasurementDate)

	return nil
}

func cmdMeasurements(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	now := time.Now()
	fs := flag.NewFlagSet("measurements", flag.ContinueOnError)
	from := fs.String("from", now.AddDate(0, -3, 0).Format(entity.DateLayout), "range start (YYYY-MM-DD)")
	to := fs.String("to", now.Format(entity.DateLayout), "range end (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	measurements, err := cli.Wellness.ListMeasurements(ctx, user.ID, *from, *to)
	if err != nil {
		return err
	}
	for _, m := range measurements {
		fmt.Printf("  %s  %.1f kg", m.MeasurementDate, m.WeightKg)
		if m.BodyFatPercentage > 0 {
			fmt.Printf("  %.1f%% fat", m.BodyFatPercentage)
		}
		fmt.Println()
	}

	return nil
}

func cmdDeleteAccount(ctx context.Context, cli *cliApp, args []string) error {
	user, err := requireUser(ctx, cli)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("delete-account", flag.ContinueOnError)
	confirmed := fs.Bool("yes", false, "confirm permanent deletion")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*confirmed {
		return fmt.Errorf("deleting %s removes all data permanently, re-run with -yes to confirm", user.Email)
	}

	if err := cli.Accounts.DeleteAccount(ctx, user.ID); err != nil {
		return err
	}
	fmt.Println("Account and all data deleted")

	return nil
}

func printUsage() {
	fmt.Println(`fittrack - local fitness tracking

Usage:
  fittrack <command> [options]

Account:
  register -name NAME -email EMAIL -password PASS
  login -email EMAIL -password PASS
  logout
  whoami
  profile [-age N] [-weight KG] [-height CM] [-gender G] [-goal TEXT]
  change-password -current PASS -new PASS
  delete-account -yes

Activities:
  activities
  add-activity -name NAME [-target N -unit U -category C -icon I -desc TEXT]
  remove-activity -id ID
  log -activity ID [-date YYYY-MM-DD] [-done=false] [-value N] [-notes TEXT]
  today
  stats [-from YYYY-MM-DD] [-to YYYY-MM-DD]

Wellness:
  workout -type TYPE -minutes N [-calories N -intensity low|moderate|high -notes TEXT -date YYYY-MM-DD]
  workouts [-from YYYY-MM-DD] [-to YYYY-MM-DD]
  measure [-weight KG -fat PCT -muscle KG -waist CM] [-date YYYY-MM-DD]
  measurements [-from YYYY-MM-DD] [-to YYYY-MM-DD]

Configuration comes from config.yaml and FITTRACK_* environment variables.`)
}
