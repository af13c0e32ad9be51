package gateway

import (
	"log"
	"time"

	"github.com/lib/pq"
)

const claimsChannel = "claims_changed"

// SubscribeToClaimChanges membuka LISTEN pada channel perubahan klaim dan
// memanggil onChange untuk setiap event (insert/update/delete dari klien
// manapun). Jaminannya at-least-once tanpa payload: callback memicu
// resinkronisasi penuh, bukan patch. Fungsi yang dikembalikan menutup
// listener; setelah itu tidak ada callback yang menyala lagi.
func SubscribeToClaimChanges(dsn string, onChange func()) (func(), error) {
	listener := pq.NewListener(dsn, 10*time.Second, time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Printf("⚠️ listener klaim: %v", err)
			}
		})

	if err := listener.Listen(claimsChannel); err != nil {
		_ = listener.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		ping := time.NewTicker(90 * time.Second)
		defer ping.Stop()
		forwardClaimChanges(done, listener.Notify, ping.C, listener.Ping, onChange)
	}()

	return func() {
		close(done)
		_ = listener.Close()
	}, nil
}

// forwardClaimChanges meneruskan notifikasi ke onChange sampai done ditutup
// atau kanal notifikasi ditutup oleh Close. Kanal yang tertutup dikenali
// lewat ok: nilai nil dari kanal tertutup bukan notifikasi, jadi tidak boleh
// ada callback yang menyala setelah teardown.
func forwardClaimChanges(done <-chan struct{}, notify <-chan *pq.Notification, ping <-chan time.Time, pingFn func() error, onChange func()) {
	for {
		select {
		case <-done:
			return
		case _, ok := <-notify:
			if !ok {
				return
			}
			// Notifikasi nil berarti koneksi tersambung ulang; event bisa
			// saja terlewat selama putus, jadi tetap refetch.
			onChange()
		case <-ping:
			if err := pingFn(); err != nil {
				log.Printf("⚠️ ping listener klaim: %v", err)
			}
		}
	}
}
