package main

import (
	"flag"
	"math/rand"

	"daifugo/internal/app"
	"daifugo/internal/bot"
	"daifugo/internal/domain"

	log "github.com/sirupsen/logrus"
)

// simulate runs all-bot rounds against the rule engine, verifying card
// conservation after every turn. It doubles as a quick balance check for the
// bot levels.
func main() {
	rounds := flag.Int("rounds", 10, "number of rounds to simulate")
	players := flag.Int("players", 4, "seats per round")
	seed := flag.Int64("seed", 0, "rng seed, 0 picks one from the clock")
	level := flag.String("level", "smart", "bot level: basic or smart")
	verbose := flag.Bool("v", false, "log every turn")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	svc, err := app.NewService(rng, bot.ParseLevel(*level))
	if err != nil {
		log.WithError(err).Fatal("failed to build service")
	}

	wins := make(map[int]int)
	for r := 0; r < *rounds; r++ {
		game, _, err := svc.StartRound(*players, -1)
		if err != nil {
			log.WithError(err).Fatal("failed to start round")
		}

		steps := 0
		for game.Phase == domain.PhasePlaying {
			events, err := svc.StepAutomated(game)
			if err != nil {
				log.WithFields(log.Fields{"round": r, "step": steps}).WithError(err).Fatal("automated turn failed")
			}
			if err := domain.CheckConservation(game); err != nil {
				log.WithFields(log.Fields{"round": r, "step": steps}).WithError(err).Fatal("card conservation violated")
			}
			for _, ev := range events {
				log.Debug(app.Describe(game, ev))
			}
			steps++
		}

		wins[game.FinishOrder[0]]++
		log.WithFields(log.Fields{
			"round":        r,
			"steps":        steps,
			"finish_order": game.FinishOrder,
		}).Info("round complete")
	}

	for seat := 0; seat < *players; seat++ {
		log.WithFields(log.Fields{"seat": seat, "wins": wins[seat]}).Info("summary")
	}
}
