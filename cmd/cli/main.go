package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shivambu108/automated-timetable-scheduler/internal/csvio"
	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
	"github.com/shivambu108/automated-timetable-scheduler/pkg/solver"
)

func main() {
	// Define arguments
	facultyPtr := flag.String("faculty", "faculty.csv", "Path to the faculty catalog CSV")
	roomsPtr := flag.String("rooms", "rooms.csv", "Path to the room catalog CSV")
	coursesPtr := flag.String("courses", "courses.csv", "Path to the course catalog CSV")
	batchesPtr := flag.String("batches", "batches.csv", "Path to the student-batch catalog CSV")
	timeLimitPtr := flag.Duration("time-limit", 5*time.Minute, "Wall-clock budget for the search")
	instancesPtr := flag.Int("instances", 1, "Number of independent parallel search instances")
	seedPtr := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	configPtr := flag.String("config", "", "Optional JSON file with solver options; flags override it")
	outPtr := flag.String("out", "", "Optional path for the exported timetable CSV")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	opts := solver.Options{}
	if *configPtr != "" {
		var err error
		opts, err = solver.OptionsFromJSON(*configPtr)
		if err != nil {
			log.Fatalf("cannot load config: %v", err)
		}
	}
	// Flags set on the command line take precedence over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "time-limit":
			opts.TimeLimit = *timeLimitPtr
		case "instances":
			opts.Instances = *instancesPtr
		case "seed":
			opts.Seed = *seedPtr
		}
	})
	if opts.TimeLimit <= 0 {
		opts.TimeLimit = *timeLimitPtr
	}
	if opts.Instances <= 0 {
		opts.Instances = *instancesPtr
	}
	opts.Logger = logger

	// Load catalogs
	facultyList, err := csvio.LoadFaculty(*facultyPtr, logger)
	if err != nil {
		log.Fatalf("cannot load faculty: %v", err)
	}
	roomList, err := csvio.LoadRooms(*roomsPtr, logger)
	if err != nil {
		log.Fatalf("cannot load rooms: %v", err)
	}
	courseList, err := csvio.LoadCourses(*coursesPtr, facultyList, logger)
	if err != nil {
		log.Fatalf("cannot load courses: %v", err)
	}
	batchList, err := csvio.LoadBatches(*batchesPtr, courseList, logger)
	if err != nil {
		log.Fatalf("cannot load batches: %v", err)
	}

	// Build and solve
	solution, err := solver.Solve(facultyList, roomList, courseList, batchList, model.DefaultTimeSlots(), opts)
	switch {
	case errors.Is(err, model.ErrMissingEssentialData):
		log.Fatalf("cannot solve: %v", err)
	case errors.Is(err, solver.ErrNoFeasibleAssignment):
		logger.Printf("time budget exhausted before feasibility: %v", err)
	case err != nil:
		log.Fatal(err)
	}

	printSolution(solution)

	if *outPtr != "" {
		if err := csvio.ExportTimetable(solution, *outPtr); err != nil {
			log.Fatalf("cannot export timetable: %v", err)
		}
		logger.Printf("timetable written to %v", *outPtr)
	}
}

func printSolution(solution *solver.Solution) {
	solution.SortForReport()

	for _, lesson := range solution.Lessons {
		batch, faculty, room := "-", "-", "-"
		day, window := "-", "-"
		if lesson.Batch != nil {
			batch = lesson.Batch.Name
		}
		if lesson.Faculty != nil {
			faculty = lesson.Faculty.Name
		}
		if lesson.Room != nil {
			room = lesson.Room.Number
		}
		if lesson.Slot != nil {
			day = lesson.Slot.Day.String()
			window = fmt.Sprintf("%v-%v", lesson.Slot.Start, lesson.Slot.End)
		}
		fmt.Printf("%-10v %-12v %-12v %-8v %-10v %-25v %v\n",
			day, window, batch, lesson.Type, lesson.Course.Code, faculty, room)
	}

	fmt.Printf("\nScore: %v (%v moves, %v accepted, %v)\n",
		solution.Score, solution.Moves, solution.Accepted, solution.Elapsed.Round(time.Millisecond))
}
