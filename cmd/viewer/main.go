package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"chat-ledger/codec"
	"chat-ledger/domain"
	"chat-ledger/internal"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

// viewer inspects one party's vault without going through a node.
// Usage: viewer <party-name>
func main() {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if len(os.Args) < 2 {
		log.Fatal("usage: viewer <party-name>")
	}
	party := os.Args[1]

	// BypassLockGuard allows opening while the node process holds the lock
	opts := badger.DefaultOptions(config.VaultDir + "/" + party).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open vault: %v", err)
	}
	defer db.Close()

	color.Bold.Printf("Vault of %s\n\n", party)
	printSessions(db)
	fmt.Println()
	printMessages(db)
}

func printSessions(db *badger.DB) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Session", "Version", "Admin", "Receivers", "Subject", "State"})

	_ = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		current := map[string]bool{}
		for it.Seek([]byte("session:current:")); it.ValidForPrefix([]byte("session:current:")); it.Next() {
			key := string(it.Item().Key())
			current[strings.TrimPrefix(key, "session:current:")] = true
		}
		for it.Seek([]byte("session:hist:")); it.ValidForPrefix([]byte("session:hist:")); it.Next() {
			var rec domain.SessionRecord
			if err := it.Item().Value(func(val []byte) error {
				return codec.Unmarshal(val, &rec)
			}); err != nil {
				continue
			}
			state := "retired"
			if current[rec.ID.String()] {
				state = "current chain"
			}
			table.Append([]string{
				short(rec.ID.String()),
				fmt.Sprintf("%d", rec.Version),
				rec.Admin.String(),
				joinParties(rec.Receivers),
				rec.Subject,
				state,
			})
		}
		return nil
	})
	table.Render()
}

func printMessages(db *badger.DB) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Message", "Session", "Sender", "Holder", "At", "Content", "State"})

	_ = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for _, scan := range []struct {
			prefix string
			state  string
		}{
			{"msg:active:", "active"},
			{"msg:hist:", "retired"},
		} {
			for it.Seek([]byte(scan.prefix)); it.ValidForPrefix([]byte(scan.prefix)); it.Next() {
				var m domain.MessageRecord
				if err := it.Item().Value(func(val []byte) error {
					return codec.Unmarshal(val, &m)
				}); err != nil {
					continue
				}
				table.Append([]string{
					short(m.ID.String()),
					short(m.SessionID.String()),
					m.Sender.String(),
					m.Holder.String(),
					m.CreatedAt.Format("15:04:05"),
					m.Content,
					scan.state,
				})
			}
		}
		return nil
	})
	table.Render()
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func joinParties(parties []domain.Party) string {
	names := make([]string, len(parties))
	for i, p := range parties {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}
