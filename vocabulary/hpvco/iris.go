package hpvco

// OntologyIRI is the identifier of the HPV Cancer Ontology document.
const OntologyIRI = "https://purl.org/uth/ontology/hpvco"

// Namespace is the base IRI prefix for HPVCO terms.
const Namespace = OntologyIRI + "#"

// DefaultDocumentURL is the permanent URL of the published RDF/XML document.
const DefaultDocumentURL = "https://purl.org/uth/ontology/hpvco.rdf"

// Top-level class IRIs.
const (
	// ClassHPVRelatedCancer is the root class for cancers attributable to HPV.
	ClassHPVRelatedCancer = Namespace + "HPVRelatedCancer"

	// ClassCervicalCancer is cervical carcinoma.
	ClassCervicalCancer = Namespace + "CervicalCancer"

	// ClassOropharyngealCancer is HPV-positive oropharyngeal carcinoma.
	ClassOropharyngealCancer = Namespace + "OropharyngealCancer"

	// ClassAnalCancer is anal carcinoma.
	ClassAnalCancer = Namespace + "AnalCancer"

	// ClassPenileCancer is penile carcinoma.
	ClassPenileCancer = Namespace + "PenileCancer"

	// ClassVulvarCancer is vulvar carcinoma.
	ClassVulvarCancer = Namespace + "VulvarCancer"

	// ClassVaginalCancer is vaginal carcinoma.
	ClassVaginalCancer = Namespace + "VaginalCancer"

	// ClassRiskFactor is a factor increasing the likelihood of HPV-related cancer.
	ClassRiskFactor = Namespace + "RiskFactor"

	// ClassPrevention is a preventive measure.
	ClassPrevention = Namespace + "Prevention"

	// ClassVaccination is HPV vaccination.
	// Extends: ClassPrevention
	ClassVaccination = Namespace + "Vaccination"

	// ClassScreening is a screening procedure (e.g. Pap test, HPV test).
	// Extends: ClassPrevention
	ClassScreening = Namespace + "Screening"

	// ClassSymptom is a clinical symptom.
	ClassSymptom = Namespace + "Symptom"

	// ClassDiagnosis is a diagnostic procedure.
	ClassDiagnosis = Namespace + "Diagnosis"

	// ClassTreatment is a treatment modality.
	ClassTreatment = Namespace + "Treatment"

	// ClassPsychosocialImpact is a psychosocial consequence of disease.
	ClassPsychosocialImpact = Namespace + "PsychosocialImpact"
)

// Object property IRIs.
const (
	// PropHasRiskFactor links a cancer to a risk factor.
	// Domain: ClassHPVRelatedCancer, Range: ClassRiskFactor
	PropHasRiskFactor = Namespace + "hasRiskFactor"

	// PropPreventedBy links a cancer to a preventive measure.
	// Domain: ClassHPVRelatedCancer, Range: ClassPrevention
	PropPreventedBy = Namespace + "preventedBy"

	// PropHasSymptom links a cancer to a symptom.
	// Domain: ClassHPVRelatedCancer, Range: ClassSymptom
	PropHasSymptom = Namespace + "hasSymptom"

	// PropDiagnosedBy links a cancer to a diagnostic procedure.
	// Domain: ClassHPVRelatedCancer, Range: ClassDiagnosis
	PropDiagnosedBy = Namespace + "diagnosedBy"

	// PropTreatedBy links a cancer to a treatment modality.
	// Domain: ClassHPVRelatedCancer, Range: ClassTreatment
	PropTreatedBy = Namespace + "treatedBy"

	// PropHasPsychosocialImpact links a cancer to a psychosocial consequence.
	// Domain: ClassHPVRelatedCancer, Range: ClassPsychosocialImpact
	PropHasPsychosocialImpact = Namespace + "hasPsychosocialImpact"
)
