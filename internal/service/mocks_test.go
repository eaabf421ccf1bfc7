package service

import (
	"time"

	"hospital-api/internal/domain"
)

// 手写的内存假仓储，接口对齐 internal/domain

type fakeUserRepo struct {
	nextID  uint
	users   map[uint]*domain.User
	updates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]*domain.User{}}
}

func (r *fakeUserRepo) Create(u *domain.User) error {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(offset, limit int) ([]domain.User, int64, error) {
	all := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, *u)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeUserRepo) Update(u *domain.User) error {
	r.updates++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type fakeAppointmentRepo struct {
	nextID uint
	items  map[uint]*domain.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{nextID: 1, items: map[uint]*domain.Appointment{}}
}

func (r *fakeAppointmentRepo) conflictExists(doctorID uint, date time.Time, slot string, excludeID uint) bool {
	for _, a := range r.items {
		if a.ID == excludeID {
			continue
		}
		if a.DoctorID == doctorID && a.Date.Equal(date) && a.Time == slot && a.Status != domain.AppointmentCancelled {
			return true
		}
	}
	return false
}

func (r *fakeAppointmentRepo) CreateIfSlotFree(a *domain.Appointment) error {
	if r.conflictExists(a.DoctorID, a.Date, a.Time, 0) {
		return domain.ErrSlotTaken
	}
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) UpdateIfSlotFree(a *domain.Appointment) error {
	if r.conflictExists(a.DoctorID, a.Date, a.Time, a.ID) {
		return domain.ErrSlotTaken
	}
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) FindByID(id uint) (*domain.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) List() ([]domain.Appointment, error) {
	all := make([]domain.Appointment, 0, len(r.items))
	for _, a := range r.items {
		all = append(all, *a)
	}
	return all, nil
}

func (r *fakeAppointmentRepo) Update(a *domain.Appointment) error {
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

type fakePatientRepo struct {
	nextID uint
	items  map[uint]*domain.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{nextID: 1, items: map[uint]*domain.Patient{}}
}

func (r *fakePatientRepo) Create(p *domain.Patient) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePatientRepo) FindByID(id uint) (*domain.Patient, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePatientRepo) List() ([]domain.Patient, error) {
	out := make([]domain.Patient, 0, len(r.items))
	for _, p := range r.items {
		if !p.IsDeleted {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePatientRepo) Update(p *domain.Patient) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

type fakeDoctorRepo struct {
	nextID uint
	items  map[uint]*domain.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{nextID: 1, items: map[uint]*domain.Doctor{}}
}

func (r *fakeDoctorRepo) Create(d *domain.Doctor) error {
	d.ID = r.nextID
	r.nextID++
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDoctorRepo) FindByID(id uint) (*domain.Doctor, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDoctorRepo) List() ([]domain.Doctor, error) {
	out := make([]domain.Doctor, 0, len(r.items))
	for _, d := range r.items {
		if !d.IsDeleted {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) Update(d *domain.Doctor) error {
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

type fakeHospitalRepo struct {
	nextID uint
	items  map[uint]*domain.Hospital
}

func newFakeHospitalRepo() *fakeHospitalRepo {
	return &fakeHospitalRepo{nextID: 1, items: map[uint]*domain.Hospital{}}
}

func (r *fakeHospitalRepo) Create(h *domain.Hospital) error {
	h.ID = r.nextID
	r.nextID++
	cp := *h
	r.items[h.ID] = &cp
	return nil
}

func (r *fakeHospitalRepo) FindByID(id uint) (*domain.Hospital, error) {
	h, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r *fakeHospitalRepo) List() ([]domain.Hospital, error) {
	out := make([]domain.Hospital, 0, len(r.items))
	for _, h := range r.items {
		out = append(out, *h)
	}
	return out, nil
}

func (r *fakeHospitalRepo) Update(h *domain.Hospital) error {
	cp := *h
	r.items[h.ID] = &cp
	return nil
}

func (r *fakeHospitalRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeReviewRepo struct {
	nextID uint
	items  map[uint]*domain.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{nextID: 1, items: map[uint]*domain.Review{}}
}

func (r *fakeReviewRepo) Create(rv *domain.Review) error {
	rv.ID = r.nextID
	r.nextID++
	cp := *rv
	r.items[rv.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) FindByID(id uint) (*domain.Review, error) {
	rv, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *rv
	return &cp, nil
}

func (r *fakeReviewRepo) List() ([]domain.Review, error) {
	out := make([]domain.Review, 0, len(r.items))
	for _, rv := range r.items {
		out = append(out, *rv)
	}
	return out, nil
}

func (r *fakeReviewRepo) Update(rv *domain.Review) error {
	cp := *rv
	r.items[rv.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

type fakePaymentRepo struct {
	nextID uint
	items  map[uint]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{nextID: 1, items: map[uint]*domain.Payment{}}
}

func (r *fakePaymentRepo) Create(p *domain.Payment) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) FindByID(id uint) (*domain.Payment, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) FindByAppointment(appointmentID uint) (*domain.Payment, error) {
	for _, p := range r.items {
		if p.AppointmentID == appointmentID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) List() ([]domain.Payment, error) {
	out := make([]domain.Payment, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePaymentRepo) Update(p *domain.Payment) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}
