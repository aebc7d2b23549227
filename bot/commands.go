package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/bot/common"
	"coinbot/service"
)

const tutorialText = "Welcome to CoinBot!\n" +
	"🎲 **How to Play**:\n" +
	"- `/balance`: Check your Coins.\n" +
	"- `/daily`: Claim 50 Coins every 24 hours.\n" +
	"- `/beg`: Beg for 5-15 Coins (1-min cooldown).\n" +
	"- `/roll <bet>`: Bet Coins on a dice roll (1-6).\n" +
	"- `/leaderboard`: See the top 5 richest players.\n" +
	"Start with 100 Coins. Have fun and gamble responsibly!"

func (b *Bot) handleTutorial(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	message := fmt.Sprintf("<@%s>, %s", user.ID, tutorialText)
	if err := common.RespondWithMessage(s, i, message); err != nil {
		log.Errorf("Error responding to tutorial command: %v", err)
	}
}

func (b *Bot) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	acct, err := b.accounts.GetOrCreate(ctx, user.ID)
	if err != nil {
		log.Errorf("Error getting account for user %s: %v", user.ID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	message := fmt.Sprintf("<@%s>, you have **%s Coins**!", user.ID, common.FormatBalance(acct.Balance))
	if err := common.RespondWithMessage(s, i, message); err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

func (b *Bot) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	result, err := b.economy.ClaimDaily(ctx, user.ID)
	if err != nil {
		var cooldownErr *service.CooldownActiveError
		if errors.As(err, &cooldownErr) {
			message := fmt.Sprintf("<@%s>, come back in %s for your daily Coins!",
				user.ID, common.FormatRemaining(cooldownErr.Remaining))
			common.RespondWithError(s, i, message)
			return
		}
		log.Errorf("Error claiming daily for user %s: %v", user.ID, err)
		common.RespondWithError(s, i, "Unable to claim daily Coins. Please try again.")
		return
	}

	message := fmt.Sprintf("<@%s>, claimed **%s Coins**! Total: %s",
		user.ID, common.FormatBalance(result.Amount), common.FormatBalance(result.NewBalance))
	if err := common.RespondWithMessage(s, i, message); err != nil {
		log.Errorf("Error responding to daily command: %v", err)
	}
}

func (b *Bot) handleBeg(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	result, err := b.economy.Beg(ctx, user.ID)
	if err != nil {
		var cooldownErr *service.CooldownActiveError
		if errors.As(err, &cooldownErr) {
			message := fmt.Sprintf("<@%s>, wait %s before begging again.",
				user.ID, common.FormatRemaining(cooldownErr.Remaining))
			common.RespondWithError(s, i, message)
			return
		}
		log.Errorf("Error begging for user %s: %v", user.ID, err)
		common.RespondWithError(s, i, "Unable to beg right now. Please try again.")
		return
	}

	message := fmt.Sprintf("<@%s>, got **%s Coins** from begging! Total: %s",
		user.ID, common.FormatBalance(result.Amount), common.FormatBalance(result.NewBalance))
	if err := common.RespondWithMessage(s, i, message); err != nil {
		log.Errorf("Error responding to beg command: %v", err)
	}
}

func (b *Bot) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	var bet int64
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "bet" {
			bet = opt.IntValue()
		}
	}

	// The suspense pause happens before the core is invoked: the account is
	// untouched until the roll actually resolves, and the roll cooldown
	// window starts at resolution.
	if b.config.RollDelay > 0 {
		if err := common.DeferResponse(s, i, false); err != nil {
			log.Errorf("Error deferring roll response: %v", err)
			return
		}
		time.Sleep(b.config.RollDelay)

		result, err := b.gambling.Roll(ctx, user.ID, bet)
		if err != nil {
			common.FollowUpWithMessage(s, i, b.renderRollError(user.ID, err))
			return
		}
		if _, err := common.FollowUpWithMessage(s, i, renderRollResult(result.Draw, result.Won, result.Payout, result.Delta, result.NewBalance)); err != nil {
			log.Errorf("Error sending roll follow-up: %v", err)
		}
		return
	}

	result, err := b.gambling.Roll(ctx, user.ID, bet)
	if err != nil {
		common.RespondWithError(s, i, b.renderRollError(user.ID, err))
		return
	}
	if err := common.RespondWithMessage(s, i, renderRollResult(result.Draw, result.Won, result.Payout, result.Delta, result.NewBalance)); err != nil {
		log.Errorf("Error responding to roll command: %v", err)
	}
}

func (b *Bot) renderRollError(userID string, err error) string {
	if errors.Is(err, service.ErrInvalidBet) {
		return fmt.Sprintf("<@%s>, bet something real.", userID)
	}

	var fundsErr *service.InsufficientFundsError
	if errors.As(err, &fundsErr) {
		return fmt.Sprintf("<@%s>, you need %s more Coins.", userID, common.FormatBalance(fundsErr.Shortfall()))
	}

	var cooldownErr *service.CooldownActiveError
	if errors.As(err, &cooldownErr) {
		return fmt.Sprintf("<@%s>, wait %s before rolling again.", userID, common.FormatRemaining(cooldownErr.Remaining))
	}

	log.Errorf("Error rolling for user %s: %v", userID, err)
	return "Unable to roll right now. Please try again."
}

func renderRollResult(draw int, won bool, payout, delta, newBalance int64) string {
	if won {
		return fmt.Sprintf("🎲 Rolled a %d! Won **%s Coins**! Balance: %s",
			draw, common.FormatBalance(payout), common.FormatBalance(newBalance))
	}
	return fmt.Sprintf("🎲 Rolled a %d! You lost **%s Coins**. Balance: %s",
		draw, common.FormatBalance(-delta), common.FormatBalance(newBalance))
}

func (b *Bot) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	entries, err := b.stats.GetLeaderboard(ctx, b.config.LeaderboardSize)
	if err != nil {
		log.Errorf("Error fetching leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to fetch the leaderboard. Please try again.")
		return
	}

	if len(entries) == 0 {
		if err := common.RespondWithMessage(s, i, "No players yet! Start gambling!"); err != nil {
			log.Errorf("Error responding to leaderboard command: %v", err)
		}
		return
	}

	var msg strings.Builder
	msg.WriteString("🏆 **Leaderboard (Top 5)** 🏆\n")
	for _, entry := range entries {
		name := GetDisplayName(s, i.GuildID, entry.UserID)
		msg.WriteString(fmt.Sprintf("%d. %s: %s Coins\n", entry.Rank, name, common.FormatBalance(entry.Balance)))
	}

	if err := common.RespondWithMessage(s, i, msg.String()); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}
