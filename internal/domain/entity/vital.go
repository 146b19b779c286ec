package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vital holds the clinical features consumed by the heart-disease model.
type Vital struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	// Age in years
	Age int `gorm:"not null" json:"age"`
	// 1 = male; 0 = female
	Sex int `gorm:"not null" json:"sex"`
	// Chest pain type (1 = typical angina; 2 = atypical angina; 3 = non-anginal pain; 4 = asymptomatic)
	Cp int `gorm:"not null" json:"cp"`
	// Resting blood pressure
	Trestbps float64 `gorm:"not null" json:"trestbps"`
	// Serum cholesterol
	Chol float64 `gorm:"not null" json:"chol"`
	// Fasting blood sugar > 120 mg/dl (1 = true; 0 = false)
	Fbs int `gorm:"not null" json:"fbs"`
	// Resting electrocardiographic result (0 = normal; 1 = ST-T wave abnormality; 2 = left ventricular hypertrophy)
	Restecg int `gorm:"not null" json:"restecg"`
	// Maximum heart rate achieved
	Thalach float64 `gorm:"not null" json:"thalach"`
	// Exercise induced angina (1 = yes; 0 = no)
	Exang int `gorm:"not null" json:"exang"`
	// ST depression induced by exercise relative to rest
	Oldpeak float64 `gorm:"not null" json:"oldpeak"`
	// Slope of the peak exercise ST segment (1 = upsloping; 2 = flat; 3 = downsloping)
	Slope int `gorm:"not null" json:"slope"`
	// Number of major vessels (0-3) colored by fluoroscopy
	Ca int `gorm:"not null" json:"ca"`
	// 3 = normal; 6 = fixed defect; 7 = reversible defect
	Thal int `gorm:"not null" json:"thal"`
	// Diagnosis (0 = < 50% diameter narrowing; 1 = > 50% diameter narrowing)
	Num        *int      `json:"num,omitempty"`
	UpdateDate time.Time `gorm:"not null;index" json:"update_date"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patients []VitalPatient `gorm:"foreignKey:VitalID" json:"patients,omitempty"`
}

func (Vital) TableName() string {
	return "vitals"
}

// FeatureNames lists the model inputs in the order the model was trained on.
var FeatureNames = []string{
	"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
	"thalach", "exang", "oldpeak", "slope", "ca", "thal",
}

// Features returns the model input vector in FeatureNames order.
func (v *Vital) Features() []float64 {
	return []float64{
		float64(v.Age),
		float64(v.Sex),
		float64(v.Cp),
		v.Trestbps,
		v.Chol,
		float64(v.Fbs),
		float64(v.Restecg),
		v.Thalach,
		float64(v.Exang),
		v.Oldpeak,
		float64(v.Slope),
		float64(v.Ca),
		float64(v.Thal),
	}
}

func (v *Vital) PatientIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(v.Patients))
	for _, p := range v.Patients {
		ids = append(ids, p.UserID)
	}
	return ids
}

// SetPatients replaces the patient links with the given user IDs.
func (v *Vital) SetPatients(ids []uuid.UUID) {
	v.Patients = make([]VitalPatient, 0, len(ids))
	for _, id := range ids {
		v.Patients = append(v.Patients, VitalPatient{VitalID: v.ID, UserID: id})
	}
}

// VitalPatient links a vital record to one of its patients.
type VitalPatient struct {
	VitalID uuid.UUID `gorm:"type:uuid;primaryKey" json:"vital_id"`
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"user_id"`
}

func (VitalPatient) TableName() string {
	return "vital_patients"
}
