// Package seed loads the demo trainers, clients and connections into an
// empty store.
package seed

import (
	"context"
	"fmt"
	"time"

	"fitconnect/internal/auth"
	"fitconnect/internal/connection"
	"fitconnect/internal/logger"
	"fitconnect/internal/user"
)

// Password is shared by every seeded account.
const Password = "password"

type trainerSeed struct {
	name         string
	bio          string
	expertise    []string
	years        int
	achievements [][2]string
}

type clientSeed struct {
	name  string
	age   int
	level user.FitnessLevel
	goals []string
}

var trainers = []trainerSeed{
	{"John Smith", "Certified personal trainer with 10 years of experience. Specialized in strength training and weight loss.",
		[]string{"Strength Training", "Weight Loss", "Bodybuilding"}, 10,
		[][2]string{{"NASM Certified Personal Trainer", "2014"}, {"Bodybuilding Competition Winner 2019", "2019"}}},
	{"Sarah Johnson", "Yoga instructor and mindfulness coach. Helping clients achieve balance through movement and meditation.",
		[]string{"Yoga", "Meditation", "Flexibility"}, 8,
		[][2]string{{"RYT 500 Certified Yoga Instructor", "2016"}, {"Mindfulness-Based Stress Reduction Certification", "2018"}}},
	{"Mike Davis", "Nutrition coach and fitness expert. Focus on sustainable lifestyle changes.",
		[]string{"Nutrition", "Weight Management", "Endurance Training"}, 12,
		[][2]string{{"Certified Nutrition Specialist", "2012"}, {"Marathon Coach Certification", "2015"}}},
	{"Emma Wilson", "CrossFit coach and functional movement specialist. Passionate about helping people build functional strength.",
		[]string{"CrossFit", "Functional Training", "HIIT"}, 7,
		[][2]string{{"CrossFit Level 2 Trainer", "2017"}, {"Functional Movement Screen Certified", "2019"}}},
	{"David Martinez", "Professional boxing coach and martial arts instructor. Training athletes and fitness enthusiasts.",
		[]string{"Boxing", "Martial Arts", "Cardio Training"}, 15,
		[][2]string{{"USA Boxing Certified Coach", "2009"}, {"Black Belt in Brazilian Jiu-Jitsu", "2015"}}},
	{"Lisa Chen", "Pilates instructor and rehabilitation specialist. Focus on core strength and injury prevention.",
		[]string{"Pilates", "Rehabilitation", "Core Strength"}, 9,
		[][2]string{{"Certified Pilates Instructor", "2015"}, {"Physical Therapy Assistant License", "2017"}}},
	{"Robert Taylor", "Swimming coach and triathlon trainer. Helping athletes achieve peak performance.",
		[]string{"Swimming", "Triathlon", "Endurance"}, 11,
		[][2]string{{"USA Swimming Certified Coach", "2013"}, {"Ironman Certified Coach", "2018"}}},
	{"Jennifer Lee", "Dance fitness instructor and Zumba specialist. Making workouts fun and engaging.",
		[]string{"Dance Fitness", "Zumba", "Cardio"}, 6,
		[][2]string{{"Zumba Instructor License", "2018"}, {"Dance Fitness Certification", "2020"}}},
	{"James Anderson", "Powerlifting coach and strength specialist. Training competitive athletes and strength enthusiasts.",
		[]string{"Powerlifting", "Strength Training", "Competition Prep"}, 13,
		[][2]string{{"USAPL Certified Coach", "2011"}, {"Powerlifting Competition Judge", "2016"}}},
	{"Maria Garcia", "Senior fitness specialist and mobility coach. Helping older adults stay active and healthy.",
		[]string{"Senior Fitness", "Mobility", "Balance Training"}, 14,
		[][2]string{{"Senior Fitness Specialist Certification", "2010"}, {"Fall Prevention Specialist", "2018"}}},
}

var clients = []clientSeed{
	{"Alice Brown", 28, user.FitnessBeginner, []string{"Lose weight", "Build strength"}},
	{"Bob Thompson", 35, user.FitnessIntermediate, []string{"Improve flexibility", "Reduce stress"}},
	{"Carol White", 42, user.FitnessAdvanced, []string{"Marathon training", "Endurance improvement"}},
	{"Daniel Kim", 25, user.FitnessBeginner, []string{"Learn boxing basics", "Cardio fitness"}},
	{"Eva Rodriguez", 30, user.FitnessIntermediate, []string{"Core strength", "Posture improvement"}},
	{"Frank Miller", 45, user.FitnessBeginner, []string{"Weight loss", "Better nutrition"}},
	{"Grace Park", 22, user.FitnessAdvanced, []string{"Competition prep", "Strength gains"}},
	{"Henry Davis", 38, user.FitnessIntermediate, []string{"Swimming technique", "Triathlon training"}},
	{"Isabella Martinez", 27, user.FitnessBeginner, []string{"Fun workouts", "Stay active"}},
	{"Jack Wilson", 50, user.FitnessBeginner, []string{"Mobility improvement", "Balance training"}},
}

// links pairs trainer and client numbers.
var links = [][2]int{
	{1, 1}, {3, 1},
	{2, 2},
	{3, 3}, {7, 3},
	{5, 4},
	{6, 5},
	{1, 6}, {3, 6},
	{9, 7},
	{7, 8},
	{8, 9},
	{10, 10},
}

func TrainerID(n int) string { return fmt.Sprintf("trainer-%d", n) }
func ClientID(n int) string  { return fmt.Sprintf("client-%d", n) }

// Build returns the demo users and connections with relationship arrays
// already filled in.
func Build(passwordHash string, now time.Time) ([]user.User, []connection.Connection) {
	users := make([]user.User, 0, len(trainers)+len(clients))
	achievementID := 0

	for i, t := range trainers {
		u := user.NewUser(fmt.Sprintf("trainer%d@example.com", i+1), passwordHash, user.RoleTrainer, t.name, now)
		u.ID = TrainerID(i + 1)
		p := u.TrainerProfile
		p.Bio = t.bio
		p.AreasOfExpertise = t.expertise
		p.YearsOfExperience = t.years
		for _, a := range t.achievements {
			achievementID++
			p.Achievements = append(p.Achievements, user.Achievement{
				ID:    fmt.Sprintf("ach-%d", achievementID),
				Title: a[0],
				Date:  a[1],
			})
		}
		users = append(users, u)
	}

	for i, c := range clients {
		u := user.NewUser(fmt.Sprintf("client%d@example.com", i+1), passwordHash, user.RoleClient, c.name, now)
		u.ID = ClientID(i + 1)
		age := c.age
		u.ClientProfile.Age = &age
		u.ClientProfile.FitnessLevel = c.level
		u.Goals = append([]string{}, c.goals...)
		users = append(users, u)
	}

	conns := make([]connection.Connection, 0, len(links))
	for i, l := range links {
		trainer := &users[l[0]-1]
		client := &users[len(trainers)+l[1]-1]

		conns = append(conns, connection.Connection{
			ID:        fmt.Sprintf("conn-%d", i+1),
			TrainerID: trainer.ID,
			ClientID:  client.ID,
			Status:    connection.StatusConnected,
			CreatedAt: now.UTC(),
		})
		trainer.Clients = append(trainer.Clients, client.ID)
		client.Trainers = append(client.Trainers, trainer.ID)
	}

	return users, conns
}

// Run seeds the store when it has no users yet. It reports whether anything
// was written.
func Run(ctx context.Context, users user.Repository, conns connection.Repository) (bool, error) {
	existing, err := users.List(ctx, "")
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(Password)
	if err != nil {
		return false, err
	}

	seededUsers, seededConns := Build(hash, time.Now())
	if err := users.CreateMany(ctx, seededUsers); err != nil {
		return false, fmt.Errorf("seed users: %w", err)
	}
	if err := conns.CreateMany(ctx, seededConns); err != nil {
		return false, fmt.Errorf("seed connections: %w", err)
	}

	logger.Info("seeded demo data", "users", len(seededUsers), "connections", len(seededConns))
	return true, nil
}
