package constants

const RespBodyErr = "failed to read response body from %s"
const DecodeBodyErr = "failed to decode response body from %s"
const EncodeBodyErr = "failed to encode request body for %s"
const StationRequestErr = "request to Station failed"
const MissingStationURLErr = "STATION_URL must be set"
const AttachCardErr = "failed to attach credit card to care request"
const CareRequestIDErr = "careRequestId is required"
const PatientIDErr = "patientId is required"
