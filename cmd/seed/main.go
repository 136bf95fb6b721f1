// Command main populates a development database with demo users, posts,
// follows, likes and comments.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to create")
	flag.IntVar(&opts.PostsPerUser, "posts", opts.PostsPerUser, "posts per user")
	flag.IntVar(&opts.FollowsPerUser, "follows", opts.FollowsPerUser, "follow edges per user")
	flag.IntVar(&opts.LikesPerUser, "likes", opts.LikesPerUser, "likes per user")
	flag.IntVar(&opts.CommentsPerUser, "comments", opts.CommentsPerUser, "comments per user")
	flag.BoolVar(&opts.SkipBcrypt, "skip-bcrypt", false, "store plaintext placeholder passwords (dev only)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	factory := seed.NewFactory(db, opts)
	if err := factory.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users with posts, follows, likes and comments", opts.Users)
}
