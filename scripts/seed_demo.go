// scripts/seed_demo.go
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/nikita1503agarwal/umkm-attendance-api/config"
	"github.com/nikita1503agarwal/umkm-attendance-api/database"
	"github.com/nikita1503agarwal/umkm-attendance-api/models"
)

func main() {
	cfg := config.Load()
	store, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("connect storage: %v", err)
	}
	defer store.Close(context.Background())

	ctx := context.Background()

	names := []string{"Andi Wijaya", "Siti Rahma", "Budi Santoso"}
	for _, n := range names {
		rec := models.Attendance{Name: n, Timestamp: models.NewTimestamp()}
		id, err := store.Insert(ctx, database.CollAttendance, rec)
		if err != nil {
			log.Fatalf("failed to insert attendance: %v", err)
		}
		fmt.Printf("✅ Attendance recorded: %s (id=%s)\n", n, id)
	}

	social := "@warungbusiti"
	umkms := []models.Umkm{
		{Name: "Warung Makan Bu Siti", Contact: "0812-3456-7890", Description: "Rumah makan masakan Padang", Social: &social},
		{Name: "Kopi Kenangan Senja", Contact: "0821-9876-5432", Description: "Kedai kopi dan camilan"},
	}
	for _, u := range umkms {
		id, err := store.Insert(ctx, database.CollUmkm, u)
		if err != nil {
			log.Fatalf("failed to insert umkm: %v", err)
		}
		fmt.Printf("✅ UMKM registered: %s (id=%s)\n", u.Name, id)
	}

	fmt.Println("✅ Demo data seeded successfully!")
}
