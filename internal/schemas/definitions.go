package schemas

// Input document schemas. rank_score is an open map of sub-criterion scores in
// [0,1] plus the ranking service's optional final_score; unknown profile
// fields are rejected so malformed exports fail loudly at ingestion.

const candidatesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "CandidateRecords",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["candidateId", "rank_score"],
    "additionalProperties": false,
    "properties": {
      "candidateId": {"type": "string", "minLength": 1},
      "rank_score": {
        "type": "object",
        "additionalProperties": {"type": "number"}
      },
      "interview_scores": {
        "type": "object",
        "additionalProperties": {"type": "number", "minimum": 0, "maximum": 1}
      },
      "detailed_profile": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "soft_skills": {"type": "array", "items": {"type": "string"}},
          "technical_skills": {"type": "array", "items": {"type": "string"}},
          "inferred_soft_skills": {"type": "array", "items": {"type": "string"}},
          "inferred_technical_skills": {"type": "array", "items": {"type": "string"}},
          "languages": {"type": "array", "items": {"type": "string"}},
          "work_experience": {"type": "array", "items": {"type": "string"}},
          "projects": {"type": "array", "items": {"type": "string"}},
          "co_curricular_activities": {"type": "array", "items": {"type": "string"}},
          "education": {"type": "array", "items": {"type": "string"}},
          "certifications": {"type": "array", "items": {"type": "string"}},
          "awards": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

const jobSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "JobRecord",
  "type": "object",
  "required": ["jobTitle"],
  "additionalProperties": false,
  "properties": {
    "jobTitle": {"type": "string", "minLength": 1},
    "departments": {"type": "array", "items": {"type": "string"}},
    "prompt": {"type": "string"}
  }
}`
