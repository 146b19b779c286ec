package graphql

import (
	"time"

	"health-monitor-api/internal/delivery/dto"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type userResolver struct {
	u *dto.UserResponse
}

func (r *userResolver) ID() graphqlgo.ID     { return graphqlgo.ID(r.u.ID.String()) }
func (r *userResolver) Email() string        { return r.u.Email }
func (r *userResolver) Roles() []string      { return r.u.Roles }
func (r *userResolver) FirstName() string    { return r.u.FirstName }
func (r *userResolver) LastName() string     { return r.u.LastName }
func (r *userResolver) Active() bool         { return r.u.Active }
func (r *userResolver) Gender() *string      { return r.u.Gender }
func (r *userResolver) DateOfBirth() *string { return r.u.DateOfBirth }
func (r *userResolver) CreatedAt() string    { return formatTime(r.u.CreatedAt) }
func (r *userResolver) UpdatedAt() string    { return formatTime(r.u.UpdatedAt) }

func usersToResolvers(users []dto.UserResponse) []*userResolver {
	out := make([]*userResolver, len(users))
	for i := range users {
		out[i] = &userResolver{u: &users[i]}
	}
	return out
}

type vitalResolver struct {
	v *dto.VitalResponse
}

func (r *vitalResolver) ID() graphqlgo.ID  { return graphqlgo.ID(r.v.ID.String()) }
func (r *vitalResolver) Age() int32        { return int32(r.v.Age) }
func (r *vitalResolver) Sex() int32        { return int32(r.v.Sex) }
func (r *vitalResolver) Cp() int32         { return int32(r.v.Cp) }
func (r *vitalResolver) Trestbps() float64 { return r.v.Trestbps }
func (r *vitalResolver) Chol() float64     { return r.v.Chol }
func (r *vitalResolver) Fbs() int32        { return int32(r.v.Fbs) }
func (r *vitalResolver) Restecg() int32    { return int32(r.v.Restecg) }
func (r *vitalResolver) Thalach() float64  { return r.v.Thalach }
func (r *vitalResolver) Exang() int32      { return int32(r.v.Exang) }
func (r *vitalResolver) Oldpeak() float64  { return r.v.Oldpeak }
func (r *vitalResolver) Slope() int32      { return int32(r.v.Slope) }
func (r *vitalResolver) Ca() int32         { return int32(r.v.Ca) }
func (r *vitalResolver) Thal() int32       { return int32(r.v.Thal) }
func (r *vitalResolver) Num() *int32       { return toInt32(r.v.Num) }
func (r *vitalResolver) UpdateDate() string {
	return formatTime(r.v.UpdateDate)
}

func (r *vitalResolver) Patients() []graphqlgo.ID {
	out := make([]graphqlgo.ID, len(r.v.Patients))
	for i, id := range r.v.Patients {
		out[i] = graphqlgo.ID(id.String())
	}
	return out
}

func vitalsToResolvers(vitals []dto.VitalResponse) []*vitalResolver {
	out := make([]*vitalResolver, len(vitals))
	for i := range vitals {
		out[i] = &vitalResolver{v: &vitals[i]}
	}
	return out
}

type dailyVitalResolver struct {
	d *dto.DailyVitalResponse
}

func (r *dailyVitalResolver) ID() graphqlgo.ID       { return graphqlgo.ID(r.d.ID.String()) }
func (r *dailyVitalResolver) PulseRate() float64     { return r.d.PulseRate.InexactFloat64() }
func (r *dailyVitalResolver) BloodPressure() float64 { return r.d.BloodPressure.InexactFloat64() }
func (r *dailyVitalResolver) Weight() float64        { return r.d.Weight.InexactFloat64() }
func (r *dailyVitalResolver) Temperature() float64   { return r.d.Temperature.InexactFloat64() }
func (r *dailyVitalResolver) RespRate() float64      { return r.d.RespRate.InexactFloat64() }
func (r *dailyVitalResolver) UpdateDate() string     { return formatTime(r.d.UpdateDate) }
func (r *dailyVitalResolver) Patient() graphqlgo.ID  { return graphqlgo.ID(r.d.Patient.String()) }

func dailyVitalsToResolvers(dailyVitals []dto.DailyVitalResponse) []*dailyVitalResolver {
	out := make([]*dailyVitalResolver, len(dailyVitals))
	for i := range dailyVitals {
		out[i] = &dailyVitalResolver{d: &dailyVitals[i]}
	}
	return out
}

type tipResolver struct {
	t *dto.TipResponse
}

func (r *tipResolver) ID() graphqlgo.ID    { return graphqlgo.ID(r.t.ID.String()) }
func (r *tipResolver) Title() string       { return r.t.Title }
func (r *tipResolver) Description() string { return r.t.Description }

func tipsToResolvers(tips []dto.TipResponse) []*tipResolver {
	out := make([]*tipResolver, len(tips))
	for i := range tips {
		out[i] = &tipResolver{t: &tips[i]}
	}
	return out
}

type alertResolver struct {
	a *dto.AlertResponse
}

func (r *alertResolver) ID() graphqlgo.ID      { return graphqlgo.ID(r.a.ID.String()) }
func (r *alertResolver) Message() string       { return r.a.Message }
func (r *alertResolver) Patient() graphqlgo.ID { return graphqlgo.ID(r.a.Patient.String()) }

func (r *alertResolver) Address() *string {
	if r.a.Address == "" {
		return nil
	}
	return &r.a.Address
}

func (r *alertResolver) Phone() *string {
	if r.a.Phone == "" {
		return nil
	}
	return &r.a.Phone
}

func alertsToResolvers(alerts []dto.AlertResponse) []*alertResolver {
	out := make([]*alertResolver, len(alerts))
	for i := range alerts {
		out[i] = &alertResolver{a: &alerts[i]}
	}
	return out
}

type authPayloadResolver struct {
	p *dto.AuthResponse
}

func (r *authPayloadResolver) Status() string  { return r.p.Status }
func (r *authPayloadResolver) Message() string { return r.p.Message }
func (r *authPayloadResolver) Token() *string  { return r.p.Token }

func (r *authPayloadResolver) User() *userResolver {
	if r.p.User == nil {
		return nil
	}
	return &userResolver{u: r.p.User}
}

func (r *authPayloadResolver) ExpiresIn() *int32 {
	if r.p.ExpiresIn == 0 {
		return nil
	}
	v := int32(r.p.ExpiresIn)
	return &v
}

type predictionResolver struct {
	p *dto.PredictionResponse
}

func (r *predictionResolver) Vital() *vitalResolver { return &vitalResolver{v: &r.p.Vital} }
func (r *predictionResolver) Label() int32          { return int32(r.p.Label) }
func (r *predictionResolver) Score() float64        { return r.p.Score }
