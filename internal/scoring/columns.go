package scoring

// Candidate-side and job-side columns of the events table. The ".1" suffix
// marks the job posting's requirement where the export reuses a name.
const (
	ColStudyTitle         = "Study Title"
	ColStudyLevel         = "Study Level"
	ColStudyArea          = "Study area"
	ColJobStudyArea       = "Study Area.1"
	ColYearsExperience    = "Years Experience"
	ColJobYearsExperience = "Years Experience.1"
	ColExpectedRal        = "Expected Ral"
	ColCurrentRal         = "Current Ral"
	ColMinimumRal         = "Minimum Ral"
	ColMaximumRal         = "Ral Maximum"
	ColSector             = "Sector"
	ColLastRole           = "Last Role"
	ColTag                = "TAG"
	ColJobTitle           = "Job Title Hiring"
	ColJobFamily          = "Job Family Hiring"
	ColRecruitmentRequest = "Recruitment Request"
	ColJobDescription     = "Job Description"
	ColCandidateProfile   = "Candidate Profile"
	ColOverall            = "Overall"
	ColOverallScaled      = "Overall_scaled"

	ColResidenceCity     = "Residence Italian City"
	ColResidenceProvince = "Residence Italian Province"
	ColResidenceRegion   = "Residence Italian Region"
	ColResidenceCountry  = "Residence Country"
)

// Derived feature columns appended by the calculator.
const (
	ColStudyTitleScore        = "Study Title Score"
	ColExperienceScore        = "Experience Score"
	ColSalaryFitScore         = "Salary Fit Score"
	ColStudyAreaScore         = "Study Area Score"
	ColProfessionalScore      = "Professional Score"
	ColProfileSimilarityScore = "Profile Similarity Score"
	ColDistanceKm             = "Distance Km"
	ColProximityScore         = "Proximity Score"
	ColOverallScore           = "Overall Score"
)
