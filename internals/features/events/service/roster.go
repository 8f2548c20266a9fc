package service

import (
	"context"
	"fmt"
	"strings"

	"halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/helpers/apperror"
	"halodkm_backend/internals/helpers/identity"
)

// Penerima bantuan & panitia: CRUD sederhana per event, tidak dijaga status event.

/* ====================== PENERIMA ====================== */

func (m *Manager) ListRecipients(ctx context.Context, eventID int64) ([]model.EventRecipientModel, error) {
	if _, err := m.findEvent(ctx, eventID); err != nil {
		return nil, err
	}
	rows, err := m.store.ListRecipients(ctx, eventID)
	if err != nil {
		return nil, storeErr(err, "Gagal mengambil penerima")
	}
	return rows, nil
}

func (m *Manager) AddRecipient(ctx context.Context, caller identity.Caller, eventID int64, in RecipientInput) (*model.EventRecipientModel, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	ev, err := m.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	row := &model.EventRecipientModel{EventID: eventID}
	in.apply(row)
	if err := m.store.CreateRecipient(ctx, row); err != nil {
		return nil, storeErr(err, "Gagal menambah penerima")
	}

	m.record(ctx, caller, fmt.Sprintf("Menambah penerima \"%s\" ke event %s", row.Nama, ev.Nama),
		map[string]any{"event_id": eventID, "recipient_id": row.ID})
	return row, nil
}

func (m *Manager) UpdateRecipient(ctx context.Context, caller identity.Caller, eventID, id int64, in RecipientInput) (*model.EventRecipientModel, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	row, err := m.store.FindRecipient(ctx, eventID, id)
	if err != nil {
		return nil, lookupErr(err, "Penerima tidak ditemukan", "Gagal mengambil penerima")
	}

	in.apply(row)
	n, err := m.store.UpdateRecipient(ctx, row)
	if err != nil {
		return nil, storeErr(err, "Gagal memperbarui penerima")
	}
	if n == 0 {
		return nil, apperror.NotFoundf("Penerima tidak ditemukan")
	}

	m.record(ctx, caller, fmt.Sprintf("Mengupdate penerima ID %d", id),
		map[string]any{"event_id": eventID, "recipient_id": id})
	return row, nil
}

func (m *Manager) DeleteRecipient(ctx context.Context, caller identity.Caller, eventID, id int64) error {
	if err := caller.Require(); err != nil {
		return err
	}
	n, err := m.store.DeleteRecipient(ctx, eventID, id)
	if err != nil {
		return storeErr(err, "Gagal menghapus penerima")
	}
	if n == 0 {
		return apperror.NotFoundf("Penerima tidak ditemukan")
	}

	m.record(ctx, caller, fmt.Sprintf("Menghapus penerima ID %d", id),
		map[string]any{"event_id": eventID, "recipient_id": id})
	return nil
}

func (in RecipientInput) apply(r *model.EventRecipientModel) {
	r.Nama = strings.TrimSpace(in.Nama)
	r.Alamat = optional(in.Alamat)
	r.NoHP = optional(in.NoHP)
	r.JenisBantuan = optional(in.JenisBantuan)
	r.Jumlah = optional(in.Jumlah)
	r.Keterangan = optional(in.Keterangan)
}

/* ====================== PANITIA ====================== */

func (m *Manager) ListCommittee(ctx context.Context, eventID int64) ([]model.EventCommitteeModel, error) {
	if _, err := m.findEvent(ctx, eventID); err != nil {
		return nil, err
	}
	rows, err := m.store.ListCommittee(ctx, eventID)
	if err != nil {
		return nil, storeErr(err, "Gagal mengambil panitia")
	}
	return rows, nil
}

func (m *Manager) AddCommitteeMember(ctx context.Context, caller identity.Caller, eventID int64, in CommitteeInput) (*model.EventCommitteeModel, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	ev, err := m.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	row := &model.EventCommitteeModel{EventID: eventID}
	in.apply(row)
	if err := m.store.CreateCommitteeMember(ctx, row); err != nil {
		return nil, storeErr(err, "Gagal menambah panitia")
	}

	m.record(ctx, caller, fmt.Sprintf("Menambah panitia \"%s\" ke event %s", row.Nama, ev.Nama),
		map[string]any{"event_id": eventID, "committee_id": row.ID})
	return row, nil
}

func (m *Manager) UpdateCommitteeMember(ctx context.Context, caller identity.Caller, eventID, id int64, in CommitteeInput) (*model.EventCommitteeModel, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	row, err := m.store.FindCommitteeMember(ctx, eventID, id)
	if err != nil {
		return nil, lookupErr(err, "Anggota panitia tidak ditemukan", "Gagal mengambil panitia")
	}

	in.apply(row)
	n, err := m.store.UpdateCommitteeMember(ctx, row)
	if err != nil {
		return nil, storeErr(err, "Gagal memperbarui panitia")
	}
	if n == 0 {
		return nil, apperror.NotFoundf("Anggota panitia tidak ditemukan")
	}

	m.record(ctx, caller, fmt.Sprintf("Mengupdate panitia ID %d", id),
		map[string]any{"event_id": eventID, "committee_id": id})
	return row, nil
}

func (m *Manager) DeleteCommitteeMember(ctx context.Context, caller identity.Caller, eventID, id int64) error {
	if err := caller.Require(); err != nil {
		return err
	}
	n, err := m.store.DeleteCommitteeMember(ctx, eventID, id)
	if err != nil {
		return storeErr(err, "Gagal menghapus panitia")
	}
	if n == 0 {
		return apperror.NotFoundf("Anggota panitia tidak ditemukan")
	}

	m.record(ctx, caller, fmt.Sprintf("Menghapus panitia ID %d", id),
		map[string]any{"event_id": eventID, "committee_id": id})
	return nil
}

func (in CommitteeInput) apply(r *model.EventCommitteeModel) {
	r.Nama = strings.TrimSpace(in.Nama)
	r.Jabatan = optional(in.Jabatan)
	r.NoHP = optional(in.NoHP)
}
