package telegram

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sampahkupilah/api/internal/classify"
	"sampahkupilah/api/internal/store"
	"sampahkupilah/api/internal/util"
)

var httpc = &http.Client{Timeout: 60 * time.Second}

var binEmoji = map[string]string{
	classify.CategoryHijau:  "🟢",
	classify.CategoryKuning: "🟡",
	classify.CategoryMerah:  "🔴",
	classify.CategoryBiru:   "🔵",
	classify.CategoryAbu:    "⚪",
}

// acceptPhoto pushes one photo through the same gate, engine, decoder and
// mapper pipeline the HTTP endpoint uses, then replies with a summary.
func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	cid := msg.Chat.ID

	wait, err := r.Gate.TryAcquire()
	if err != nil {
		r.send(cid, fmt.Sprintf("Tunggu %d detik lagi sebelum memindai berikutnya ya.", int(wait.Seconds())+1))
		return
	}
	defer r.Gate.Release()

	ph := msg.Photo[len(msg.Photo)-1]
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		r.send(cid, "Gagal mengambil foto: "+err.Error())
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath)
	imgBytes, err := download(url)
	if err != nil {
		r.send(cid, "Gagal mengunduh foto: "+err.Error())
		return
	}

	dataURL := util.MakeDataURL(util.SniffMimeHTTP(imgBytes), base64.StdEncoding.EncodeToString(imgBytes))

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	engine := r.Manager.Get(cid)
	raw, err := engine.Classify(ctx, []string{dataURL})
	if err != nil {
		log.Printf("bot: classify for chat %d: %v", cid, err)
		r.send(cid, "Layanan AI sedang bermasalah, coba lagi nanti.")
		return
	}

	decision, decErr := classify.DecodeDecision(raw)
	if decErr != nil {
		log.Printf("bot: falling back to defaults: %v", decErr)
	}
	resp := classify.BuildResponse(decision)

	if r.Repo != nil {
		go r.persist(cid, resp.Decision)
	}

	r.send(cid, formatDecision(resp.Decision))
}

func formatDecision(d classify.Decision) string {
	emoji := binEmoji[d.Category]
	text := fmt.Sprintf("%s %s → tempat sampah %s (%s)\nKeyakinan: %.0f%%\nAlasan: %s",
		emoji, d.DominantClass, d.BinName, d.Category, d.Confidence*100, d.Reason)
	if d.FunFact != "" {
		text += "\n\n💡 " + d.FunFact
	}
	if d.RecyclingAdvice != "" {
		text += "\n♻️ " + d.RecyclingAdvice
	}
	return text
}

func (r *Router) persist(cid int64, d classify.Decision) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	rec := store.DetectionRecord{
		UserIdentity: fmt.Sprintf("tg:%d", cid),
		Category:     d.Category,
		BinName:      d.BinName,
		Confidence:   d.Confidence,
		Reason:       d.Reason,
		CreatedAt:    time.Now(),
	}
	if err := r.Repo.Insert(ctx, rec); err != nil {
		log.Printf("bot: persist detection for chat %d: %v", cid, err)
	}
}

func download(url string) ([]byte, error) {
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}
