package controller

import (
	"bufio"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	claimDTO "khataman_backend/internals/features/claims/dto"
	claimService "khataman_backend/internals/features/claims/service"
	"khataman_backend/internals/features/live"
	liveDTO "khataman_backend/internals/features/live/dto"
	helper "khataman_backend/internals/helpers"
)

const totalJuz = 30

type LiveController struct {
	Hub *live.Hub
}

func NewLiveController(hub *live.Hub) *LiveController {
	return &LiveController{Hub: hub}
}

// ✅ Snapshot penuh (campaigns, groups, parts, claims) untuk render awal
func (ctrl *LiveController) GetSnapshot(c *fiber.Ctx) error {
	snap := ctrl.Hub.Snapshot()

	return helper.JsonOK(c, "Berhasil mengambil snapshot", fiber.Map{
		"version":   ctrl.Hub.Version(),
		"campaigns": snap.Campaigns,
		"groups":    snap.Groups,
		"parts":     claimService.PartsByJuz(snap.Parts),
		"claims":    claimDTO.ToClaimResponseList(snap.Claims, snap.GroupNameByID),
	})
}

// ✅ Progress satu kelompok: status per juz + ketersediaan per part
func (ctrl *LiveController) GetGroupProgress(c *fiber.Ctx) error {
	snap := ctrl.Hub.Snapshot()
	if len(snap.Groups) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Belum ada kelompok")
	}

	groupID := snap.Groups[0].ID
	if raw := c.Query("group_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		groupID = parsed
	}

	var groupName string
	for i := range snap.Groups {
		if snap.Groups[i].ID == groupID {
			groupName = snap.Groups[i].Name
		}
	}
	if groupName == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelompok tidak ditemukan")
	}

	progress := liveDTO.GroupProgress{
		GroupID:   groupID.String(),
		GroupName: groupName,
		TotalJuz:  totalJuz,
		Juz:       make([]liveDTO.JuzProgress, 0, totalJuz),
	}

	campaign := claimService.ActiveCampaign(snap.Campaigns)
	scoped := snap.Claims
	if campaign != nil {
		progress.CampaignID = campaign.ID.String()
		progress.CampaignName = campaign.Name
		scoped = claimService.ClaimsForGroup(snap.Claims, campaign.ID, groupID)
	} else {
		scoped = nil
	}
	progress.ClaimedJuz = claimService.UniqueClaimedJuzCount(scoped)

	claimByPart := make(map[uuid.UUID]int, len(scoped))
	for i := range scoped {
		claimByPart[scoped[i].PartID] = i
	}

	partsByJuz := claimService.PartsByJuz(snap.Parts)
	wib := wibLocation()
	for juz := 1; juz <= totalJuz; juz++ {
		parts := partsByJuz[juz]
		jp := liveDTO.JuzProgress{
			JuzNumber: juz,
			Parts:     make([]liveDTO.PartStatus, 0, len(parts)),
		}
		if len(parts) == 0 {
			jp.Status = liveDTO.JuzStatusNotConfigured
			progress.Juz = append(progress.Juz, jp)
			continue
		}

		claimed := 0
		for _, part := range parts {
			ps := liveDTO.PartStatus{
				ID:         part.ID.String(),
				PartNumber: part.PartNumber,
				PartLabel:  part.PartLabel,
			}
			if idx, ok := claimByPart[part.ID]; ok {
				ps.Claimed = true
				if scoped[idx].Participant != nil {
					ps.ParticipantName = scoped[idx].Participant.Name
				}
				ps.ClaimedAtWIB = scoped[idx].ClaimedAt.In(wib).Format("02 Jan 15:04")
				claimed++
			}
			jp.Parts = append(jp.Parts, ps)
		}
		if claimed == len(parts) {
			jp.Status = liveDTO.JuzStatusFull
		} else {
			jp.Status = liveDTO.JuzStatusAvailable
		}
		progress.Juz = append(progress.Juz, jp)
	}

	return helper.JsonOK(c, "Berhasil mengambil progress kelompok", progress)
}

// ✅ Stream SSE: satu event per perubahan tabel klaim. Klien cukup refetch
// snapshot saat menerima event; payload-nya hanya nomor versi.
func (ctrl *LiveController) StreamChanges(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	versions, cancel := ctrl.Hub.Subscribe()
	current := ctrl.Hub.Version()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		if err := writeEvent(w, "snapshot", current); err != nil {
			return
		}
		keepalive := time.NewTicker(25 * time.Second)
		defer keepalive.Stop()

		for {
			select {
			case v, ok := <-versions:
				if !ok {
					return
				}
				if err := writeEvent(w, "change", v); err != nil {
					return
				}
			case <-keepalive.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}

func writeEvent(w *bufio.Writer, event string, version uint64) error {
	payload, err := sonic.Marshal(fiber.Map{"version": version})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	return w.Flush()
}

func wibLocation() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}
