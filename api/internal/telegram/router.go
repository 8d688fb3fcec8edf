package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sampahkupilah/api/internal/classify"
	"sampahkupilah/api/internal/gate"
	"sampahkupilah/api/internal/store"
)

// Router dispatches bot updates onto the classification pipeline. It shares
// the engines, gate and store with the HTTP server's composition root.
type Router struct {
	Bot     *tgbotapi.BotAPI
	Engines *classify.Engines
	Manager *classify.Manager
	Gate    *gate.RateGate
	Repo    *store.DetectionRepo // nil when no database is configured
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.handleCommand(upd)
		return
	}

	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}

	if strings.TrimSpace(upd.Message.Text) != "" {
		r.send(cid, "Kirim foto sampah, nanti aku kasih tahu tempat sampah yang tepat. Perintah: /start /health /engine")
	}
}

func (r *Router) handleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Halo! Kirim foto sampah dan aku bantu memilahnya ke tempat sampah yang benar.\nPerintah: /health, /engine")
	case "health":
		r.send(cid, "✅ OK")
	case "engine":
		r.handleEngineCommand(cid, upd.Message.CommandArguments())
	default:
		r.send(cid, "Perintah tidak dikenal.")
	}
}

func (r *Router) handleEngineCommand(cid int64, args string) {
	name := strings.ToLower(strings.TrimSpace(args))
	if name == "" {
		cur := r.Manager.Get(cid)
		r.send(cid, fmt.Sprintf("Engine saat ini: %s (%s)\nPenggunaan:\n/engine openai\n/engine gemini", cur.Name(), cur.GetModel()))
		return
	}
	eng, err := r.Engines.Get(name)
	if err != nil {
		r.send(cid, "Engine tidak dikenal. Pilihan: openai | gemini")
		return
	}
	r.Manager.Set(cid, eng)
	r.send(cid, "Ok, pindah ke engine: "+eng.Name())
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, _ = r.Bot.Send(msg)
}
