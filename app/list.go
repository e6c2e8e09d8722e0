package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/projectascend/ascend/internal/api"
	"github.com/projectascend/ascend/internal/exercise"
	"github.com/projectascend/ascend/internal/models"
	"github.com/projectascend/ascend/internal/player"
	"github.com/projectascend/ascend/internal/timeutil"
	"github.com/projectascend/ascend/internal/ui"
	"github.com/projectascend/ascend/report"
)

const (
	noWorkoutsMsg  = "No workouts found for the specified time range"
	noExercisesMsg = "No exercises match the given filters"
	noQuestsMsg    = "No quests found"
	dayLayout      = "Jan 02, 2006"
	dateLayout     = "Jan 02, 2006 03:04 PM"
	xpBarWidth     = 30
)

// printWorkoutsTable prints a workout table to w.
func printWorkoutsTable(w io.Writer, workouts []models.Workout) error {
	tableBody := make([][]string, len(workouts))

	for i := range workouts {
		wo := &workouts[i]

		status := ui.Green("synced")
		if !wo.Synced {
			status = ui.Yellow("local")
		}

		var done, total int
		for j := range wo.Exercises {
			for _, s := range wo.Exercises[j].Sets {
				total++

				if s.Completed {
					done++
				}
			}
		}

		sets := "-"
		if total > 0 {
			sets = fmt.Sprintf("%d/%d", done, total)
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			wo.StartedAt.Local().Format(dateLayout),
			wo.Name,
			timeutil.FormatElapsed(wo.ElapsedMs),
			sets,
			status,
		}
	}

	tableBody = append([][]string{
		{"#", "STARTED", "NAME", "DURATION", "SETS", "STATUS"},
	}, tableBody...)

	return ui.PrintTable(tableBody, w)
}

// listWorkouts prints out a table of workouts followed by the totals.
func listWorkouts(workouts []models.Workout) error {
	if len(workouts) == 0 {
		report.Info(noWorkoutsMsg)
		return nil
	}

	if err := printWorkoutsTable(os.Stdout, workouts); err != nil {
		return err
	}

	var total int64
	for i := range workouts {
		total += workouts[i].ElapsedMs
	}

	hrs, mins := timeutil.MinsToHoursAndMins(int((time.Duration(total) * time.Millisecond).Minutes()))

	pterm.Printfln(
		"%s workout(s), %s",
		ui.Highlight(len(workouts)),
		ui.Highlight(fmt.Sprintf("%dh %dm", hrs, mins)),
	)

	return nil
}

// printExercisesTable prints the exercise library to w.
func printExercisesTable(w io.Writer, exercises []exercise.Exercise) error {
	if len(exercises) == 0 {
		report.Info(noExercisesMsg)
		return nil
	}

	tableBody := make([][]string, 0, len(exercises)+1)
	tableBody = append(tableBody, []string{
		"ID", "NAME", "MUSCLES", "EQUIPMENT", "DIFFICULTY",
	})

	for i := range exercises {
		ex := &exercises[i]

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", ex.ID),
			ex.Name,
			strings.Join(ex.Tags.PrimaryMuscles, ", "),
			strings.Join(ex.Tags.Equipment, ", "),
			ex.Tags.Difficulty,
		})
	}

	return ui.PrintTable(tableBody, w)
}

// printExercise prints the details of a single exercise to w.
func printExercise(w io.Writer, ex *exercise.Exercise) {
	fmt.Fprintf(w, "%s %s\n", ui.Highlight(ex.Name), ui.Cyan(fmt.Sprintf("#%d", ex.ID)))

	rows := []struct {
		label string
		value string
	}{
		{"Description", ex.Description},
		{"Instructions", ex.Instructions},
		{"Common mistakes", ex.CommonMistakes},
		{"Primary muscles", strings.Join(ex.Tags.PrimaryMuscles, ", ")},
		{"Secondary muscles", strings.Join(ex.Tags.SecondaryMuscles, ", ")},
		{"Equipment", strings.Join(ex.Tags.Equipment, ", ")},
		{"Difficulty", ex.Tags.Difficulty},
		{"Video", ex.VideoURL},
	}

	for _, r := range rows {
		if r.value == "" {
			continue
		}

		fmt.Fprintf(w, "\n%s\n%s\n", ui.Yellow(r.label), r.value)
	}
}

// printFacets prints the equipment and difficulty values found in the
// library, which are the accepted --equipment and --difficulty filters.
func printFacets(w io.Writer, exercises []exercise.Exercise) {
	facets := []struct {
		name   string
		values []string
	}{
		{"Equipment", exercise.Equipment(exercises)},
		{"Difficulty", exercise.Difficulties(exercises)},
	}

	for _, f := range facets {
		values := "-"
		if len(f.values) > 0 {
			values = strings.Join(f.values, ", ")
		}

		fmt.Fprintf(w, "%s: %s\n", ui.Highlight(f.name), values)
	}
}

// printRemoteWorkoutsTable prints the workouts stored by the backend to w.
func printRemoteWorkoutsTable(w io.Writer, workouts []api.Workout) error {
	if len(workouts) == 0 {
		report.Info("No workouts in your account yet")
		return nil
	}

	tableBody := [][]string{{"ID", "DATE", "NAME", "DURATION", "XP"}}

	for i := range workouts {
		wo := &workouts[i]

		duration := "-"
		if wo.DurationMinutes != nil {
			duration = timeutil.FormatDuration(time.Duration(*wo.DurationMinutes) * time.Minute)
		}

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", wo.ID),
			wo.DateLogged.Local().Format(dayLayout),
			wo.Name,
			duration,
			formatXP(wo.XPEarned),
		})
	}

	return ui.PrintTable(tableBody, w)
}

// printQuestsTable prints quests to w.
func printQuestsTable(w io.Writer, quests []models.Quest) error {
	if len(quests) == 0 {
		report.Info(noQuestsMsg)
		return nil
	}

	tableBody := [][]string{{"ID", "TITLE", "TYPE", "STATUS", "DUE", "REWARD"}}

	for i := range quests {
		q := &quests[i]

		status := q.Status
		switch q.Status {
		case models.QuestCompleted:
			status = ui.Green(q.Status)
		case models.QuestFailed:
			status = ui.Red(q.Status)
		case models.QuestActive:
			status = ui.Yellow(q.Status)
		}

		due := "-"
		if !q.DueDate.IsZero() {
			due = q.DueDate.Local().Format(dayLayout)
		}

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", q.ID),
			q.Title,
			q.Type,
			status,
			due,
			formatXP(q.XPReward),
		})
	}

	return ui.PrintTable(tableBody, w)
}

// formatXP lists an award in attribute order, e.g. "+50 STR +20 END".
func formatXP(xp player.XP) string {
	var parts []string

	for _, attr := range player.Attributes {
		if v := xp[attr]; v != 0 {
			parts = append(parts, fmt.Sprintf("+%d %s", v, attr))
		}
	}

	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, " ")
}

// printStats prints the player's level, XP bar and attributes to w. A
// non-empty username is shown before the level.
func printStats(w io.Writer, s *player.Stats, username string, estimated bool) error {
	title := fmt.Sprintf("Level %d", s.Level)
	if username != "" {
		title = username + " · " + title
	}

	if estimated {
		title += " (estimated from local workouts)"
	}

	fmt.Fprintln(w, ui.Highlight(title))
	fmt.Fprintf(
		w,
		"%s %d XP, %d to next level\n\n",
		ui.Bar(s.LevelProgress(), xpBarWidth),
		s.TotalXP,
		s.XPToNextLevel,
	)

	tableBody := [][]string{{"ATTRIBUTE", "VALUE", "XP"}}

	for _, attr := range player.Attributes {
		stat := s.Attribute(attr)

		tableBody = append(tableBody, []string{
			ui.Attribute(attr),
			fmt.Sprintf("%d", stat.Value),
			fmt.Sprintf("%d", stat.XP),
		})
	}

	return ui.PrintTable(tableBody, w)
}
