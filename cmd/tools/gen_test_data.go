package main

import (
	"flag"
	"fmt"
	"log/slog"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"

	"chatter-hub/domain"
	"chatter-hub/repositories"
)

// Seeds a Badger directory with fake delivered inboxes, so the viewer and
// the hub can be tried against realistic data without typing messages.
func main() {
	// Dossier de destination (le même que BADGER_FILEPATH du hub)
	dir := flag.String("dir", "./hub_data", "badger directory to seed")
	perChatter := flag.Int("entries", 24, "delivered entries per chatter")
	flag.Parse()

	fmt.Println("🚀 Chatter Hub : génération des inbox de test...")

	db, err := badger.Open(badger.DefaultOptions(*dir).WithLoggingLevel(badger.ERROR))
	if err != nil {
		panic(fmt.Sprintf("Impossible d'ouvrir Badger : %v", err))
	}
	defer func() { _ = db.Close() }()

	log := logs.GetLoggerFromLevel(slog.LevelError)
	repo := repositories.NewInboxRepository(db, log)

	group := domain.GroupID(uuid.NewString())
	recipients := []domain.ChatterID{
		domain.ChatterID(uuid.NewString()),
		domain.ChatterID(uuid.NewString()),
		domain.ChatterID(uuid.NewString()),
	}
	senders := []domain.ChatterID{
		domain.ChatterID(uuid.NewString()),
		domain.ChatterID(uuid.NewString()),
	}
	bodies := []string{
		"On déploie la 2.3 demain matin",
		"Standup décalé à 11h",
		"Le rapport mensuel est prêt",
		"Quelqu'un pour relire ma PR ?",
		"Pizza à midi, qui vient ?",
		"N'oubliez pas la rétro de vendredi",
	}

	total := 0
	for _, recipient := range recipients {
		// Petits batchs espacés : des timestamps distincts pour le tri
		for start := 0; start < *perChatter; start += 6 {
			batch := make([]domain.InboxEntry, 0, 6)
			for i := start; i < start+6 && i < *perChatter; i++ {
				batch = append(batch, domain.InboxEntry{
					GroupID:  group,
					SenderID: senders[i%len(senders)],
					Body:     fmt.Sprintf("%s (#%d)", bodies[i%len(bodies)], i+1),
				})
			}
			if err := repo.Append(recipient, batch); err != nil {
				panic(fmt.Sprintf("Échec d'écriture : %v", err))
			}
			total += len(batch)
			time.Sleep(2 * time.Millisecond)
		}
		fmt.Printf("📥 Inbox remplie : %s (%d entrées)\n", recipient, *perChatter)
	}

	fmt.Printf("\n✅ Prêt ! %d entrées écrites dans %s\n", total, *dir)
	fmt.Printf("Lance le viewer avec BADGER_FILEPATH=%s pour les inspecter\n", *dir)
}
