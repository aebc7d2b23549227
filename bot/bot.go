package bot

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"coinbot/service"
)

// Config holds bot configuration
type Config struct {
	Token           string
	GuildID         string
	RollDelay       time.Duration // suspense pause before a roll resolves
	LeaderboardSize int
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	accounts service.AccountService
	economy  service.EconomyService
	gambling service.GamblingService
	stats    service.StatsService
}

func New(config Config, accounts service.AccountService, economy service.EconomyService, gambling service.GamblingService, stats service.StatsService) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	bot := &Bot{
		config:   config,
		session:  dg,
		accounts: accounts,
		economy:  economy,
		gambling: gambling,
		stats:    stats,
	}

	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) registerCommands() error {
	minBet := float64(1)
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "tutorial",
			Description: "How to play",
		},
		{
			Name:        "balance",
			Description: "Check your Coins",
		},
		{
			Name:        "daily",
			Description: "Claim your daily Coins",
		},
		{
			Name:        "beg",
			Description: "Beg for a few Coins",
		},
		{
			Name:        "roll",
			Description: "Bet Coins on a dice roll",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "bet",
					Description: "Amount of Coins to bet",
					Required:    true,
					MinValue:    &minBet,
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "See the richest players",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "tutorial":
		b.handleTutorial(s, i)
	case "balance":
		b.handleBalance(s, i)
	case "daily":
		b.handleDaily(s, i)
	case "beg":
		b.handleBeg(s, i)
	case "roll":
		b.handleRoll(s, i)
	case "leaderboard":
		b.handleLeaderboard(s, i)
	}
}

// interactionUser returns the invoking user whether the command came from a
// guild channel or a DM.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
