package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/hiendaovinh/toolkit/pkg/env"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	tele "gopkg.in/telebot.v3"
)

const textStart = `🐝 Welcome to BeeClaimer!🐝

Claim the faucet, run the cloud miner and grab your daily gift to earn TON rewards.

🚀 Invite friends for lifetime commission on their earnings!
`

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	vs, err := env.EnvsRequired("BOT_TOKEN")
	if err != nil {
		log.Fatal(err)
	}

	app := &cli.App{
		Name: "bot",
		Commands: []*cli.Command{
			commandBot(vs["BOT_TOKEN"]),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandBot(token string) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the Telegram bot long-poller",
		Action: func(c *cli.Context) error {
			pref := tele.Settings{
				Token:  token,
				Poller: &tele.LongPoller{Timeout: 10 * time.Second},
			}

			b, err := tele.NewBot(pref)
			if err != nil {
				return err
			}

			b.Handle("/start", func(c tele.Context) error {
				// /start payloads carry referral codes from invite links
				payload := c.Message().Payload
				if strings.HasPrefix(payload, "user") {
					log.Printf("referral join: %s invited by code %s", c.Sender().Username, payload)
				}

				return c.Send(textStart, &tele.SendOptions{
					ParseMode: tele.ModeHTML,
					ReplyMarkup: &tele.ReplyMarkup{
						InlineKeyboard: [][]tele.InlineButton{
							{{Text: "🐝 Open BeeClaimer", WebApp: &tele.WebApp{URL: os.Getenv("TELEGRAM_WEB_APP_URL")}}},
						},
					},
				})
			})

			log.Println("bot: polling for updates")
			b.Start()
			return nil
		},
	}
}
